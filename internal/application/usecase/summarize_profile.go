package usecase

import (
	"context"
	"fmt"

	"github.com/bibbank/creditrisk/internal/application/dto"
	"github.com/bibbank/creditrisk/internal/domain/model"
)

// SummarizeProfile is the use case for the input overview shown before scoring.
type SummarizeProfile struct{}

// NewSummarizeProfile creates a new SummarizeProfile use case.
func NewSummarizeProfile() *SummarizeProfile {
	return &SummarizeProfile{}
}

// Execute validates the form and returns its totals and labels.
func (uc *SummarizeProfile) Execute(_ context.Context, req dto.PredictRequest) (dto.InputSummary, error) {
	profile, err := model.NewCustomerProfile(req.ToParams())
	if err != nil {
		return dto.InputSummary{}, fmt.Errorf("failed to validate profile: %w", err)
	}
	return dto.SummaryFromModel(profile.Summary()), nil
}

// DescribeForm is the use case listing the form inputs and their bounds.
type DescribeForm struct{}

// NewDescribeForm creates a new DescribeForm use case.
func NewDescribeForm() *DescribeForm {
	return &DescribeForm{}
}

// Execute returns the form description.
func (uc *DescribeForm) Execute() dto.FormResponse {
	return dto.FormResponse{Fields: model.FormFields()}
}
