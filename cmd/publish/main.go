package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mertcan/coursehub/internal/app/models/dto"
	"github.com/mertcan/coursehub/internal/builder"
	"github.com/mertcan/coursehub/internal/pkg/logger"
)

// publish drives the full course publishing flow from the command line:
// authenticate, upload assets, walk the wizard and submit for review.
func main() {
	// Optional .env for local development; real deployments use the environment
	_ = godotenv.Load()

	var (
		serverURL   = flag.String("server", "http://localhost:8080", "API base URL")
		email       = flag.String("email", "", "account email")
		password    = flag.String("password", "", "account password")
		title       = flag.String("title", "", "course title")
		description = flag.String("description", "", "course description")
		categoryID  = flag.Int64("category", 0, "category id")
		subjectID   = flag.Int64("subject", 0, "subject id")
		price       = flag.Float64("price", 0, "course price")
		thumbnail   = flag.String("thumbnail", "", "local path of the thumbnail image")
		unitTitle   = flag.String("unit", "Unit 1", "title of the first unit")
		lessonTitle = flag.String("lesson", "Lesson 1", "title of the first lesson")
		videos      = flag.String("videos", "", "comma-separated local video files")
		pdfs        = flag.String("pdfs", "", "comma-separated local document files")
		submit      = flag.Bool("submit", false, "submit the course for review")
	)
	flag.Parse()

	if *email == "" || *password == "" || *title == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, publishOptions{
		serverURL:   *serverURL,
		email:       *email,
		password:    *password,
		title:       *title,
		description: *description,
		categoryID:  *categoryID,
		subjectID:   *subjectID,
		price:       *price,
		thumbnail:   *thumbnail,
		unitTitle:   *unitTitle,
		lessonTitle: *lessonTitle,
		videos:      splitPaths(*videos),
		pdfs:        splitPaths(*pdfs),
		submit:      *submit,
	}); err != nil {
		logger.Error().Err(err).Msg("Publishing failed")
		os.Exit(1)
	}
}

type publishOptions struct {
	serverURL   string
	email       string
	password    string
	title       string
	description string
	categoryID  int64
	subjectID   int64
	price       float64
	thumbnail   string
	unitTitle   string
	lessonTitle string
	videos      []string
	pdfs        []string
	submit      bool
}

func run(ctx context.Context, opts publishOptions) error {
	client := builder.NewClient(opts.serverURL)

	login, err := client.Login(ctx, opts.email, opts.password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	logger.Info().Str("email", login.User.Email).Str("role", login.User.Role).Msg("Authenticated")

	uploader := builder.NewUploader(client)

	thumbnailURL := ""
	if opts.thumbnail != "" {
		thumbnailURL, err = uploader.UploadImage(ctx, opts.thumbnail)
		if err != nil {
			return fmt.Errorf("thumbnail upload failed: %w", err)
		}
		logger.Info().Str("path", thumbnailURL).Msg("Thumbnail uploaded")
	}

	var reqs []builder.UploadRequest
	for _, p := range opts.videos {
		reqs = append(reqs, builder.UploadRequest{Kind: builder.FileVideo, LocalPath: p})
	}
	for _, p := range opts.pdfs {
		reqs = append(reqs, builder.UploadRequest{Kind: builder.FilePDF, LocalPath: p})
	}

	paths, err := uploader.UploadMany(ctx, reqs)
	if err != nil {
		return fmt.Errorf("asset upload failed: %w", err)
	}
	logger.Info().Int("count", len(paths)).Msg("Assets uploaded")

	wizard := builder.NewWizard(client)

	if err := wizard.SaveInfo(ctx, &dto.CreateCourseRequest{
		Title:        opts.title,
		Description:  opts.description,
		CategoryID:   opts.categoryID,
		SubjectID:    opts.subjectID,
		Price:        opts.price,
		ThumbnailURL: thumbnailURL,
	}); err != nil {
		return err
	}
	logger.Info().Int64("courseId", wizard.Course().ID).Msg("Draft saved")

	unit, err := wizard.AddUnit(ctx, opts.unitTitle)
	if err != nil {
		return err
	}

	lessonReq := &dto.AddLessonRequest{Title: opts.lessonTitle}
	for i, p := range paths[:len(opts.videos)] {
		lessonReq.Resources = append(lessonReq.Resources, dto.ResourcePayload{
			Title: fmt.Sprintf("Video %d", i+1),
			URL:   p,
			Type:  "VIDEO",
		})
	}
	for i, p := range paths[len(opts.videos):] {
		lessonReq.Resources = append(lessonReq.Resources, dto.ResourcePayload{
			Title: fmt.Sprintf("Notes %d", i+1),
			URL:   p,
			Type:  "NOTE",
		})
	}
	lessonReq.Quiz = len(lessonReq.Resources) == 0

	if _, err := wizard.AddLesson(ctx, unit.ID, lessonReq); err != nil {
		return err
	}

	if !opts.submit {
		logger.Info().Int64("courseId", wizard.Course().ID).Msg("Draft ready, not submitted")
		return nil
	}

	if err := wizard.Submit(ctx); err != nil {
		return err
	}
	logger.Info().
		Int64("courseId", wizard.Course().ID).
		Str("status", string(wizard.Course().Status)).
		Msg("Course submitted for review")
	return nil
}

func splitPaths(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
