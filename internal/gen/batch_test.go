package gen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unchecker-generator/internal/analyze"
)

func batchJobs(t *testing.T, dir string) []Job {
	t.Helper()

	graph := testGraph(t)

	io := DefaultConfig()
	io.Class = "IoUncheckers"
	io.Checked = analyze.ParseTypeID("java.io.IOException")
	io.Unchecked = analyze.ParseTypeID("java.io.UncheckedIOException")

	return []Job{
		{
			Name:     "uncheckers",
			Graph:    graph,
			Config:   DefaultConfig(),
			SamTypes: ids("java.lang.Runnable", "java.util.function.Function"),
			Output:   filepath.Join(dir, "Uncheckers.java"),
		},
		{
			Name:     "io-uncheckers",
			Graph:    graph,
			Config:   io,
			SamTypes: ids("java.util.function.Supplier"),
			Output:   filepath.Join(dir, "io", "IoUncheckers.java"),
		},
	}
}

func TestRunBatch(t *testing.T) {
	jobs := batchJobs(t, t.TempDir())

	files, err := RunBatch(context.Background(), jobs, 1)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "Uncheckers.java", files[0].Filename)
	assert.Equal(t, "IoUncheckers.java", files[1].Filename)

	// Same output as a direct call.
	direct, err := NewGenerator(jobs[0].Graph, jobs[0].Config).Generate(jobs[0].SamTypes)
	require.NoError(t, err)
	assert.Equal(t, direct.Content, files[0].Content)
}

func TestRunBatch_Failure(t *testing.T) {
	jobs := batchJobs(t, t.TempDir())
	jobs[1].SamTypes = ids("com.example.Pair")

	files, err := RunBatch(context.Background(), jobs, 0)
	require.Error(t, err)
	assert.Nil(t, files)
	assert.True(t, IsMalformedSamTypeError(err))
	assert.Contains(t, err.Error(), "target io-uncheckers")
}

func TestRunBatch_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunBatch(ctx, batchJobs(t, t.TempDir()), 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerateAndWrite(t *testing.T) {
	dir := t.TempDir()
	jobs := batchJobs(t, dir)

	require.NoError(t, GenerateAndWrite(context.Background(), jobs, 2))

	for _, job := range jobs {
		_, err := os.Stat(job.Output)
		assert.NoError(t, err, job.Output)
	}
}

func TestGenerateAndWrite_AllOrNothing(t *testing.T) {
	dir := t.TempDir()
	jobs := batchJobs(t, dir)
	jobs[1].Config.Unchecked = analyze.ParseTypeID("java.io.IOException")

	err := GenerateAndWrite(context.Background(), jobs, 2)
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
