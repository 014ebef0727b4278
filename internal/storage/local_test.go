package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	st, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "/api/files"})
	assert.NoError(t, err)

	ctx := context.Background()
	assert.NoError(t, st.Save(ctx, "cvs/test.pdf", strings.NewReader("cv content"), "application/pdf"))

	exists, err := st.Exists(ctx, "cvs/test.pdf")
	assert.NoError(t, err)
	assert.True(t, exists)

	reader, err := st.Get(ctx, "cvs/test.pdf")
	assert.NoError(t, err)
	content, err := io.ReadAll(reader)
	reader.Close()
	assert.NoError(t, err)
	assert.Equal(t, "cv content", string(content))

	url, err := st.GetURL(ctx, "cvs/test.pdf")
	assert.NoError(t, err)
	assert.Equal(t, "/api/files/cvs/test.pdf", url)

	assert.NoError(t, st.Delete(ctx, "cvs/test.pdf"))
	exists, err = st.Exists(ctx, "cvs/test.pdf")
	assert.NoError(t, err)
	assert.False(t, exists)

	// Deleting a missing file is not an error.
	assert.NoError(t, st.Delete(ctx, "cvs/missing.pdf"))
}

func TestNewStorageRejectsUnknownType(t *testing.T) {
	_, err := NewStorage(Config{Type: "ftp"})
	assert.Error(t, err)
}
