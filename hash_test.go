package ecelgamal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Hash(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", fmt.Sprintf("%x", Hash(nil)))
	assert.Equal("9595c9df90075148eb06860365df33584b75bff782a510c6cd4883a419833d50", fmt.Sprintf("%x", Hash256([]byte("hello"))))
	assert.Equal("b6a9c8c230722b7c748331a8b450f05566dc7d0f", fmt.Sprintf("%x", Hash160([]byte("hello"))))
}
