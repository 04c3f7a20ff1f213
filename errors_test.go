package dyn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorUnwrapsToSentinel(t *testing.T) {
	_, err := ParseJSONString(`{`)
	assert.True(t, errors.Is(err, ErrParse))
}

func TestErrorKindStringUnknown(t *testing.T) {
	assert.Equal(t, "<unknown>", numErrorKinds.String())
	assert.Equal(t, "<unknown>", ErrorKind(-1).String())
}

func TestErrorMessageIncludesPosition(t *testing.T) {
	_, err := ParseJSONString("\n\n  ]")
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatal("expected *Error")
	}
	assert.Equal(t, 3, perr.Line)
	assert.Equal(t, 3, perr.Column)
	assert.Contains(t, perr.Error(), "line 3, column 3")
}
