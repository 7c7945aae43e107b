package gen

import (
	"context"
	"fmt"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"unchecker-generator/internal/analyze"
)

var log = commonlog.GetLogger("unchecker.gen")

// Job is one file to generate.
type Job struct {
	// Name identifies the job in logs and errors.
	Name     string
	Graph    *analyze.TypeGraph
	Config   Config
	SamTypes []analyze.TypeID
	// Output is the path the file is written to.
	Output string
}

// RunBatch generates every job with at most limit generators running at
// once (no limit if limit <= 0). Results are in job order. The first
// failure cancels the remaining jobs and nothing is returned but the error.
func RunBatch(ctx context.Context, jobs []Job, limit int) ([]*GeneratedFile, error) {
	files := make([]*GeneratedFile, len(jobs))

	eg, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}

	for i := range jobs {
		job := &jobs[i]

		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			log.Debugf("generating %s (%d SAM types)", job.Name, len(job.SamTypes))

			f, err := NewGenerator(job.Graph, job.Config).Generate(job.SamTypes)
			if err != nil {
				return fmt.Errorf("target %s: %w", job.Name, err)
			}

			files[i] = f

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return files, nil
}

// GenerateAndWrite runs the batch and writes every file only if all jobs
// succeeded.
func GenerateAndWrite(ctx context.Context, jobs []Job, limit int) error {
	files, err := RunBatch(ctx, jobs, limit)
	if err != nil {
		return err
	}

	paths := make([]string, len(jobs))
	for i, job := range jobs {
		paths[i] = job.Output
	}

	if err := WriteFiles(paths, files); err != nil {
		return err
	}

	for i, job := range jobs {
		log.Infof("wrote %s (%d bytes)", job.Output, len(files[i].Content))
	}

	return nil
}
