package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veejvn/agricultural-serving-platform/utils"
)

func TestGenerateVerificationCode(t *testing.T) {
	code, err := utils.GenerateVerificationCode(6)
	assert.NoError(t, err)
	assert.Len(t, code, 6)
	for _, ch := range code {
		assert.True(t, ch >= '0' && ch <= '9', "mã chỉ gồm chữ số, gặp %q", ch)
	}
}

func TestGenerateQRCode(t *testing.T) {
	png, err := utils.GenerateQRCode("ORDER-42", 256)
	assert.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
