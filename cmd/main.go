package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"

	"story-rag/internal/config"
	"story-rag/internal/db"
	"story-rag/internal/embedding"
	"story-rag/internal/grades"
	"story-rag/internal/helper"
	"story-rag/internal/imagegen"
	"story-rag/internal/knowledge"
	"story-rag/internal/llmservice"
	"story-rag/internal/metrics"
	"story-rag/internal/models"
	"story-rag/internal/parser"
	"story-rag/internal/story"
	"story-rag/internal/vectorstore"
)

const configFilePath = "./configs/config.yaml"

type options struct {
	docPath  string
	seedOnly bool
	skipSeed bool
	outDir   string
	query    string
	export   bool
	reset    bool
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Caller().Logger()

	configPath := flag.String("config", configFilePath, "Path to the config file")
	subject := flag.String("subject", "", "Subject of the story, e.g. Physics")
	topic := flag.String("topic", "", "Topic of the story, e.g. Gravity")
	area := flag.String("area", "", "Specific area within the topic")
	grade := flag.String("grade", models.DefaultGrade, "Grade level, e.g. grade_6 or college_freshman")
	curriculum := flag.String("curriculum", models.DefaultCurriculum, "Curriculum, e.g. IB or CBSE")
	docPath := flag.String("doc", "", "Reference document to seed into the knowledge base")
	seedOnly := flag.Bool("seed-only", false, "Seed the knowledge base and exit")
	skipSeed := flag.Bool("skip-seed", false, "Do not generate knowledge chunks before the story")
	outDir := flag.String("out", "", "Directory for the story json, printed to stdout when empty")
	query := flag.String("query", "", "Search the knowledge base and print the results")
	export := flag.Bool("export", false, "Export the in-memory collection to its encrypted file")
	reset := flag.Bool("reset", false, "Delete the stored knowledge of the collection before seeding")
	dryRun := flag.Bool("dry-run", false, "Print the request key and grade profiles without calling any service")
	flag.Parse()

	req := models.StoryRequest{
		Curriculum:   *curriculum,
		Subject:      *subject,
		Topic:        *topic,
		SpecificArea: *area,
		Grade:        *grade,
	}

	if *dryRun {
		printDryRun(req)
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	} else {
		log.Warn().Str("log_level", cfg.LogLevel).Msg("Unknown log level, keeping debug")
	}

	if *query == "" && (req.Subject == "" || req.Topic == "") {
		log.Fatal().Msg("Please provide a subject and topic using the -subject and -topic flags, or a search using -query")
	}
	if *seedOnly && *skipSeed && *docPath == "" && !*reset {
		log.Fatal().Msg("-seed-only together with -skip-seed has nothing to do without -doc or -reset")
	}

	ctx := context.Background()
	if cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.RequestTimeout)
		defer cancel()
	}

	runErr := run(ctx, cfg, req, options{
		docPath:  *docPath,
		seedOnly: *seedOnly,
		skipSeed: *skipSeed,
		outDir:   *outDir,
		query:    *query,
		export:   *export,
		reset:    *reset,
	})

	if cfg.Metrics.PushgatewayURL != "" {
		if err := metrics.Push(context.Background(), cfg.Metrics.PushgatewayURL, cfg.Metrics.Job); err != nil {
			log.Warn().Err(err).Msg("Error pushing metrics")
		}
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Story generation failed")
	}
}

func run(ctx context.Context, cfg *config.Config, req models.StoryRequest, opts options) error {
	var bunDB *bun.DB
	if cfg.DatabaseEnabled() {
		bunDB = db.NewDB(db.ConnectDB(&cfg.Database), cfg.Database.Debug)
		defer bunDB.Close()
		if err := db.InitDB(ctx, bunDB); err != nil {
			return fmt.Errorf("error initializing database: %w", err)
		}
	}

	embedder, err := embedding.New(&cfg.EmbedLLM)
	if err != nil {
		return err
	}
	store, err := vectorstore.Open(ctx, &cfg.RAG, embedder, bunDB)
	if err != nil {
		return fmt.Errorf("error opening retrieval store: %w", err)
	}

	if opts.reset {
		resetter, ok := store.(interface{ Reset(context.Context) error })
		if !ok {
			return fmt.Errorf("backend %s cannot be reset", cfg.RAG.Backend)
		}
		if err := resetter.Reset(ctx); err != nil {
			return err
		}
	}

	if opts.query != "" {
		results, err := store.Search(ctx, opts.query, cfg.RAG.SearchLimit)
		if err != nil {
			return err
		}
		log.Info().Msg("Query: ~~~~~~~~~~~~~~~~~~~~~~~~~>>>>>")
		fmt.Printf("%s\n\n", opts.query)
		log.Info().Msg("Results: ~~~~~~~~~~~~~~~~~~~~~~~~~>>>>>")
		helper.PrettyPrint(results)
		return nil
	}

	var archive *db.StoryArchive
	if cfg.Database.ArchiveStories && !opts.seedOnly {
		archive = db.NewStoryArchive(bunDB)
		cached, err := archive.Get(ctx, req.Key())
		switch {
		case err == nil:
			log.Info().Str("key", req.Key()).Msg("Story found in archive")
			return output(cached, req, opts.outDir)
		case !errors.Is(err, db.ErrStoryNotFound):
			return fmt.Errorf("error reading story archive: %w", err)
		}
	}

	chat, err := llmservice.New(&cfg.ChatLLM)
	if err != nil {
		return err
	}
	seeder := knowledge.NewSeeder(chat, store, parser.New(&cfg.RAG), cfg.RAG.NumChunks)

	if opts.docPath != "" {
		if _, err := seeder.SeedFromDocument(ctx, opts.docPath, req.Subject, req.FullTopic(), req.Grade, req.Curriculum); err != nil {
			return fmt.Errorf("error seeding document: %w", err)
		}
	}
	if !opts.skipSeed {
		if err := seeder.SeedKnowledgeBase(ctx, req.Subject, req.FullTopic(), req.Grade, req.Curriculum); err != nil {
			return fmt.Errorf("error seeding knowledge base: %w", err)
		}
	}
	if opts.export {
		if exporter, ok := store.(interface{ Export() error }); ok {
			if err := exporter.Export(); err != nil {
				return fmt.Errorf("error exporting collection: %w", err)
			}
		} else {
			log.Warn().Str("backend", cfg.RAG.Backend).Msg("Backend has nothing to export")
		}
	}
	if opts.seedOnly {
		return nil
	}

	generator := story.NewGenerator(chat, imagegen.New(&cfg.Image), store, story.Options{
		SearchLimit:  cfg.RAG.SearchLimit,
		ImageSize:    cfg.Image.Size,
		ImageQuality: cfg.Image.Quality,
	})
	generated, err := generator.GenerateCompleteStory(ctx, req.Subject, req.FullTopic(), req.Grade, req.Curriculum)
	if err != nil {
		return err
	}

	if archive != nil {
		if err := archive.Save(ctx, req.Key(), generated); err != nil {
			log.Error().Err(err).Str("key", req.Key()).Msg("Error archiving story")
		}
	}
	return output(generated, req, opts.outDir)
}

func output(s *models.Story, req models.StoryRequest, outDir string) error {
	if outDir == "" {
		helper.PrettyPrint(s)
		return nil
	}
	path, err := helper.WriteJSON(outDir, req.FileName(), s)
	if err != nil {
		return err
	}
	log.Info().Str("file", path).Int("scenes", len(s.Scenes)).Msg("Story written")
	return nil
}

func printDryRun(req models.StoryRequest) {
	storyProfile, known := grades.LookupStory(req.Grade)
	if !known {
		log.Warn().Str("grade", req.Grade).Strs("known", grades.Known()).Msg("Unknown grade, using generic phrasing")
	}
	helper.PrettyPrint(map[string]interface{}{
		"key":               req.Key(),
		"file_name":         req.FileName(),
		"full_topic":        req.FullTopic(),
		"story_profile":     storyProfile,
		"knowledge_profile": grades.Knowledge(req.Grade),
	})
}
