package github

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-repoindexer/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestInitGitHub_Initialize(t *testing.T) {
	i := InitGitHub{
		Logger:            log.New(io.Discard, "", 0),
		Token:             "-",
		APIURL:            "-",
		RequestsPerSecond: 10,
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	counter, err := depend.Resolve[domain.RepositoryFileCounter]()
	assert.NoError(t, err)
	assert.NotNil(t, counter)

	loader, err := depend.Resolve[domain.RepositoryLoader]()
	assert.NoError(t, err)
	assert.NotNil(t, loader)
}
