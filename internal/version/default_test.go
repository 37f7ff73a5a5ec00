package version

import (
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-launcher/internal/logger"
	"github.com/MKhiriev/go-launcher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ReturnsSameInstance(t *testing.T) {
	first := Default()
	second := Default()

	require.NotNil(t, first)
	assert.Same(t, first, second)
}

// TestDefault_ConcurrentFirstCalls verifies that racing callers all receive
// the one cached descriptor.
func TestDefault_ConcurrentFirstCalls(t *testing.T) {
	const callers = 64

	results := make([]*models.VersionInfo, callers)
	start := make(chan struct{})

	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i] = Default()
		}()
	}
	close(start)
	wg.Wait()

	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}

// TestDefault_MatchesPackagedResource verifies that the cached descriptor is
// built from the embedded resource.
func TestDefault_MatchesPackagedResource(t *testing.T) {
	fresh := NewLoader(logger.Nop()).LoadPackaged()

	assert.Equal(t, fresh.String(), Default().String())
	assert.NotSame(t, fresh, Default())
}

func TestLoadFromStream_PackageLevel(t *testing.T) {
	info := LoadFromStream(strings.NewReader("buildTag=tag-1\n"))

	assert.Equal(t, "tag-1", info.BuildTag())
	assert.NotSame(t, Default(), info)
}

func TestLoadFile_PackageLevelMissing(t *testing.T) {
	info := LoadFile("/nonexistent/versionInfo.properties")

	assert.True(t, info.IsEmpty())
}
