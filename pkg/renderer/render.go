package renderer

import (
	"context"
	"time"
)

// RenderOptions controls a single render
type RenderOptions struct {
	NumWorkers int             // Parallel workers (0 = logical CPU count)
	Verbose    bool            // Log a line per completed scanline
	OnRow      func(RowUpdate) // Optional; called from a single goroutine
}

// RowUpdate reports a finished scanline
type RowUpdate struct {
	Row       int   // Image row, 0 = top
	Pixels    []RGB // Aliases the frame; must not be modified
	Remaining int   // Scanlines still to finish
}

// Render renders the whole image in parallel. Rows are dispatched to the worker pool
// and collected here, so OnRow never runs concurrently with itself. If ctx is cancelled
// no further rows are dispatched and the partial frame is returned with ctx.Err().
func (rt *Raytracer) Render(ctx context.Context, options RenderOptions) (*Frame, RenderStats, error) {
	startTime := time.Now()
	width, height := rt.config.Width, rt.config.Height

	frame := NewFrame(width, height)
	pool := NewWorkerPool(rt, options.NumWorkers, height)
	pool.Start(ctx)

	stats := RenderStats{
		SamplesPerPixel: rt.config.SamplesPerPixel,
		MaxDepth:        rt.config.MaxDepth,
		NumWorkers:      pool.GetNumWorkers(),
	}

	rt.logger.Printf("Rendering %dx%d, %d samples/pixel, max depth %d (using %d workers)...\n",
		width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth, stats.NumWorkers)

	go func() {
		defer pool.Stop()
		for row := 0; row < height; row++ {
			task := RowTask{
				Row:    row,
				Pixels: frame.Row(row),
				Seed:   rowSeed(rt.config.Seed, row),
			}
			if err := pool.SubmitTask(ctx, task); err != nil {
				return
			}
		}
	}()

	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}

		stats.RowsCompleted++
		stats.TotalPixels += width
		stats.TotalSamples += result.Samples
		remaining := height - stats.RowsCompleted

		if options.Verbose {
			rt.logger.Printf("Scanlines remaining: %d\n", remaining)
		}
		if options.OnRow != nil {
			options.OnRow(RowUpdate{
				Row:       result.Row,
				Pixels:    frame.Row(result.Row),
				Remaining: remaining,
			})
		}
	}

	stats.Elapsed = time.Since(startTime)

	if stats.RowsCompleted < height {
		rt.logger.Printf("Rendering cancelled after %d of %d scanlines\n", stats.RowsCompleted, height)
		if err := ctx.Err(); err != nil {
			return frame, stats, err
		}
		return frame, stats, context.Canceled
	}

	if options.Verbose {
		rt.logger.Printf("Done!\n")
	}
	rt.logger.Printf("Render completed in %v (%d samples)\n", stats.Elapsed, stats.TotalSamples)

	return frame, stats, nil
}
