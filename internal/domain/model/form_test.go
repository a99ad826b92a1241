package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/creditrisk/internal/domain/model"
)

func TestFormFields(t *testing.T) {
	fields := model.FormFields()
	require.Len(t, fields, 5+3*model.Periods)

	byName := make(map[string]model.FieldSpec, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}

	limit := byName["limit_bal"]
	assert.Equal(t, 0.0, limit.Min)
	assert.Equal(t, 1_500_000.0, limit.Max)
	assert.Equal(t, 20_000.0, limit.Default)
	assert.Equal(t, 1_000.0, limit.Step)

	age := byName["age"]
	assert.Equal(t, 18.0, age.Min)
	assert.Equal(t, 100.0, age.Max)
	assert.Equal(t, 30.0, age.Default)

	sex := byName["sex"]
	assert.Equal(t, model.KindSelect, sex.Kind)
	require.Len(t, sex.Options, 2)
	assert.Equal(t, "Male (1)", sex.Options[0].Label)
	assert.Equal(t, "Female (2)", sex.Options[1].Label)
	assert.Equal(t, 1.0, sex.Default)

	assert.Len(t, byName["education"].Options, 5)
	assert.Len(t, byName["marriage"].Options, 4)
	assert.Equal(t, 0.0, byName["marriage"].Default)

	assert.Equal(t, -2.0, byName["pay_0"].Min)
	assert.Equal(t, 8.0, byName["pay_6"].Max)
	assert.Equal(t, "PAY_0", byName["pay_0"].Label)
	_, hasPay1 := byName["pay_1"]
	assert.False(t, hasPay1)

	assert.Equal(t, -1_000_000.0, byName["bill_amt1"].Min)
	assert.Equal(t, 2_000_000.0, byName["bill_amt6"].Max)
	assert.Equal(t, 0.0, byName["pay_amt1"].Min)
	assert.Equal(t, 2_500_000.0, byName["pay_amt6"].Max)
}
