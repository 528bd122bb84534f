// Command seed loads sample events from a YAML file into the database.
// Events whose slug is already taken are skipped, so the command is safe to
// re-run against a populated database.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"eventlist/config"
	"eventlist/internal/domain"
	"eventlist/internal/repository/postgres"
	"eventlist/internal/services"
)

type seedFile struct {
	Events []seedEvent `yaml:"events"`
}

type seedEvent struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Overview    string   `yaml:"overview"`
	Image       string   `yaml:"image"`
	Venue       string   `yaml:"venue"`
	Location    string   `yaml:"location"`
	Date        string   `yaml:"date"`
	Time        string   `yaml:"time"`
	Mode        string   `yaml:"mode"`
	Audience    string   `yaml:"audience"`
	Agenda      []string `yaml:"agenda"`
	Organizer   string   `yaml:"organizer"`
	Tags        []string `yaml:"tags"`
}

func main() {
	file := flag.String("file", "cmd/seed/events.yaml", "path to the seed YAML file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	data, err := os.ReadFile(*file)
	if err != nil {
		logger.Error("read seed file", "file", *file, "err", err)
		os.Exit(1)
	}
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		logger.Error("parse seed file", "file", *file, "err", err)
		os.Exit(1)
	}
	if len(seed.Events) == 0 {
		logger.Error("seed file contains no events", "file", *file)
		os.Exit(1)
	}

	store := postgres.NewStore(cfg.DBUrl)
	defer store.Close()
	eventService := services.NewEventService(postgres.NewEventRepository(store))

	ctx := context.Background()
	created, skipped := 0, 0
	for _, se := range seed.Events {
		event := &domain.Event{
			Title:       se.Title,
			Description: se.Description,
			Overview:    se.Overview,
			Image:       se.Image,
			Venue:       se.Venue,
			Location:    se.Location,
			Date:        se.Date,
			Time:        se.Time,
			Mode:        se.Mode,
			Audience:    se.Audience,
			Agenda:      se.Agenda,
			Organizer:   se.Organizer,
			Tags:        se.Tags,
		}
		if err := eventService.CreateEvent(ctx, event); err != nil {
			if errors.Is(err, domain.ErrSlugTaken) {
				logger.Info("event already seeded, skipping", "title", se.Title)
				skipped++
				continue
			}
			logger.Error("seed event", "title", se.Title, "err", err)
			os.Exit(1)
		}
		logger.Info("seeded event", "title", event.Title, "slug", event.Slug, "date", event.Date)
		created++
	}
	logger.Info("seeding complete", "created", created, "skipped", skipped)
}
