// Command audiocond runs the conditioning pipeline offline: it decodes video
// clips, prepares the two branch tensors the audio model consumes, and
// writes them as .npy files with a metadata JSON per clip.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/calliope-ml/go-audiocond/internal/config"
	"github.com/calliope-ml/go-audiocond/internal/logging"
	"github.com/calliope-ml/go-audiocond/internal/media"
	"github.com/calliope-ml/go-audiocond/internal/numpy"
	"github.com/calliope-ml/go-audiocond/internal/preprocess"
	"github.com/calliope-ml/go-audiocond/internal/source"
	"github.com/calliope-ml/go-audiocond/internal/types"
)

func main() {
	videoPath := flag.String("video", "", "Path to a single input video file")
	tarPath := flag.String("tar", "", "Path to a .tar archive of input clips")
	s3URL := flag.String("s3", "", "s3://bucket/key of an input video")
	outputDir := flag.String("out", "output", "Directory to write branch tensors")
	duration := flag.Float64("duration", 0, "Target duration in seconds (0 = use source duration)")
	maskClip := flag.Bool("mask-clip", false, "Skip the clip branch and only emit sync conditioning")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	clips, err := collectClips(*videoPath, *tarPath, *s3URL, cfg.AWSRegion)
	if err != nil {
		logger.Fatal("collect clips", zap.Error(err))
	}
	if len(clips) == 0 {
		logger.Fatal("no input given, use -video, -tar or -s3")
	}

	decoder := media.NewDecoder(logger)
	for _, clip := range clips {
		if err := processClip(decoder, clip, *outputDir, *duration, *maskClip, cfg.TempDir, logger); err != nil {
			logger.Error("processing clip failed", zap.String("key", clip.Key), zap.Error(err))
		}
	}
}

func collectClips(videoPath, tarPath, s3URL, region string) ([]types.Clip, error) {
	switch {
	case videoPath != "":
		clip, err := source.FromFile(videoPath)
		if err != nil {
			return nil, err
		}
		return []types.Clip{clip}, nil
	case tarPath != "":
		return source.FromTar(tarPath)
	case s3URL != "":
		clip, err := source.FromS3(context.Background(), s3URL, region)
		if err != nil {
			return nil, err
		}
		return []types.Clip{clip}, nil
	}
	return nil, nil
}

func processClip(decoder *media.Decoder, clip types.Clip, outputDir string, duration float64, maskClip bool, tempDir string, logger *zap.Logger) error {
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return err
	}
	tempVideoPath := filepath.Join(tempDir, clip.Key+".mp4")
	if err := os.WriteFile(tempVideoPath, clip.RawData, 0644); err != nil {
		return err
	}
	defer os.Remove(tempVideoPath)

	video, info, err := decoder.Decode(tempVideoPath)
	if err != nil {
		return err
	}
	if duration <= 0 {
		duration = info.Duration
	}
	if duration <= 0 {
		return fmt.Errorf("clip %s has no known duration, pass -duration", clip.Key)
	}

	cond := preprocess.Process(video, duration, preprocess.Options{MaskClip: maskClip})

	outPath := filepath.Join(outputDir, clip.Key)
	if err := os.MkdirAll(outPath, 0755); err != nil {
		return err
	}

	meta := types.ConditioningMetadata{
		Key:          clip.Key,
		Duration:     duration,
		SourceFrames: video.Frames,
		SourceSize:   []int{video.Height, video.Width},
		ClipMasked:   maskClip,
	}
	if batch, ok := cond.Clip.Get(); ok {
		meta.ClipFrames = batch.Frames
		if err := writeBatch(filepath.Join(outPath, "clip.npy"), batch); err != nil {
			return err
		}
	}
	if batch, ok := cond.Sync.Get(); ok {
		meta.SyncFrames = batch.Frames
		if err := writeBatch(filepath.Join(outPath, "sync.npy"), batch); err != nil {
			return err
		}
	}

	metaBytes, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outPath, "metadata.json"), metaBytes, 0644); err != nil {
		return err
	}

	logger.Info("clip processed",
		zap.String("key", clip.Key),
		zap.Float64("duration", duration),
		zap.Int("clip_frames", meta.ClipFrames),
		zap.Int("sync_frames", meta.SyncFrames),
	)
	return nil
}

func writeBatch(path string, batch types.FrameBatch) error {
	w, err := numpy.NewWriter(path)
	if err != nil {
		return err
	}
	defer w.Close()
	return w.WriteFloat32(batch.Data, batch.Shape())
}
