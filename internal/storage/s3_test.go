package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDataURL(t *testing.T) {
	t.Run("well-formed", func(t *testing.T) {
		mime, payload, err := splitDataURL("data:image/png;base64,aGVsbG8=")
		assert.NoError(t, err)
		assert.Equal(t, "image/png", mime)
		assert.Equal(t, "aGVsbG8=", payload)
	})

	t.Run("missing data prefix", func(t *testing.T) {
		_, _, err := splitDataURL("image/png;base64,aGVsbG8=")
		assert.Error(t, err)
	})

	t.Run("not base64 encoded", func(t *testing.T) {
		_, _, err := splitDataURL("data:image/png,rawbytes")
		assert.Error(t, err)
	})
}

func TestObjectURL(t *testing.T) {
	t.Run("public base url", func(t *testing.T) {
		s := &S3{cfg: S3Config{Bucket: "imgs", Region: "us-east-1", PublicURL: "https://cdn.example.com/"}}
		assert.Equal(t, "https://cdn.example.com/partners/a.png", s.objectURL("partners/a.png"))
	})

	t.Run("bucket endpoint fallback", func(t *testing.T) {
		s := &S3{cfg: S3Config{Bucket: "imgs", Region: "us-east-1"}}
		assert.Equal(t, "https://imgs.s3.us-east-1.amazonaws.com/partners/a.png", s.objectURL("partners/a.png"))
	})
}
