package ui_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/storekit/pkg/ui"
)

func TestEnumsValid(t *testing.T) {
	assert.True(t, ui.SizeMedium.Valid())
	assert.False(t, ui.ComponentSize("huge").Valid())

	for _, v := range []ui.ComponentVariant{
		ui.VariantPrimary, ui.VariantSecondary, ui.VariantSuccess,
		ui.VariantWarning, ui.VariantError, ui.VariantDark,
	} {
		assert.True(t, v.Valid(), v)
	}
	assert.False(t, ui.ComponentVariant("info").Valid())
}

func TestVariantForKind(t *testing.T) {
	assert.Equal(t, ui.VariantSuccess, ui.VariantForKind("success"))
	assert.Equal(t, ui.VariantError, ui.VariantForKind("error"))
	assert.Equal(t, ui.VariantWarning, ui.VariantForKind("warning"))
	assert.Equal(t, ui.VariantPrimary, ui.VariantForKind("info"))
	assert.Equal(t, ui.VariantPrimary, ui.VariantForKind("other"))
}

func TestLoadingState(t *testing.T) {
	var s ui.LoadingState
	assert.False(t, s.IsLoading)

	s.Start()
	assert.True(t, s.IsLoading)

	s.Fail(errors.New("timeout"))
	assert.False(t, s.IsLoading)
	assert.True(t, s.Failed())
	assert.Equal(t, "timeout", s.Error)

	s.Start()
	assert.False(t, s.Failed())
	s.Done()
	assert.False(t, s.IsLoading)
	assert.False(t, s.Failed())
}
