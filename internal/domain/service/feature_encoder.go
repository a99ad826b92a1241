package service

import (
	"github.com/bibbank/creditrisk/internal/domain/model"
	"github.com/bibbank/creditrisk/internal/domain/valueobject"
)

// SexMarriageOther is the composite code for every (sex, marriage) pair not in
// sexMarriageCodes, including marriage 0 for both sexes and (female, others).
const SexMarriageOther = 6

// sexMarriageCodes maps (sex, marriage) to the SE_MA feature the model was trained with.
var sexMarriageCodes = map[[2]int]int{
	{1, 1}: 1, // male, married
	{1, 2}: 2, // male, single
	{1, 3}: 3, // male, others
	{2, 1}: 4, // female, married
	{2, 2}: 5, // female, single
}

// SexMarriageCode returns the SE_MA composite code for a (sex, marriage) pair.
func SexMarriageCode(sex valueobject.Sex, marriage valueobject.Marriage) int {
	if code, ok := sexMarriageCodes[[2]int{sex.Code(), marriage.Code()}]; ok {
		return code
	}
	return SexMarriageOther
}

// FeatureEncoder turns a validated CustomerProfile into the model's feature vector.
// It holds no state; a single instance may be shared.
type FeatureEncoder struct{}

// NewFeatureEncoder creates a new FeatureEncoder.
func NewFeatureEncoder() *FeatureEncoder {
	return &FeatureEncoder{}
}

// Encode lays the profile out in model.FeatureNames order.
func (e *FeatureEncoder) Encode(p *model.CustomerProfile) model.FeatureVector {
	values := make([]float64, 0, len(model.FeatureNames))

	values = append(values,
		p.LimitBal().InexactFloat64(),
		float64(p.Education().Code()),
		float64(p.Marriage().Code()),
	)
	for _, s := range p.PayStatus() {
		values = append(values, float64(s))
	}
	for _, b := range p.BillAmt() {
		values = append(values, b.InexactFloat64())
	}
	for _, a := range p.PayAmt() {
		values = append(values, a.InexactFloat64())
	}
	values = append(values, float64(SexMarriageCode(p.Sex(), p.Marriage())))

	// Lengths always agree; the error path only guards hand-built vectors.
	v, _ := model.NewFeatureVector(model.FeatureNames, values)
	return v
}
