// Command demo fills the configured store with sample data and prints the
// resulting goal tree.
package main

import (
	"context"
	"log"

	"github.com/fatih/color"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/app"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/english"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/lesson"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/logging"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/printers"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/sport"
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/store"
)

func main() {
	cfg, err := store.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.Must(store.VerboseConfigured(cfg))
	disk, err := store.Open(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	svc := app.New(disk, app.Options{Logger: logger})
	ctx := context.Background()

	if err := seed(ctx, svc); err != nil {
		log.Fatal(err)
	}

	f, err := svc.Goals.Forest(ctx)
	if err != nil {
		log.Fatal(err)
	}
	pp := printers.PrettyPrint{Out: color.Output}
	pp.Title("Goals")
	pp.Goals(f.Visible())
}

func seed(ctx context.Context, svc *app.Service) error {
	book, err := svc.Goals.Add(ctx, "Read a book")
	if err != nil {
		return err
	}
	for _, title := range []string{"Chapter 1", "Chapter 2"} {
		if _, err := svc.Goals.AddChild(ctx, book, title); err != nil {
			return err
		}
	}
	if _, err := svc.Goals.Add(ctx, "Run 5 km"); err != nil {
		return err
	}

	lessons := []lesson.Input{
		{Name: "Matematika", Time: "09:00", Topic: "Algebra", Days: []int{1, 3, 5}},
		{Name: "Ingliz tili", Time: "14:30", Days: lesson.EveryDay()},
	}
	for _, in := range lessons {
		if _, err := svc.Lessons.Add(ctx, in); err != nil {
			return err
		}
	}

	ex, err := svc.Sport.AddExercise(ctx, "Squat")
	if err != nil {
		return err
	}
	if _, err := svc.Sport.SaveWorkout(ctx, ex.ID, []sport.Set{{Reps: 10, Weight: 40}, {Reps: 8, Weight: 45}}); err != nil {
		return err
	}

	if err := svc.English.SetPosition(ctx, "Intermediate"); err != nil {
		return err
	}
	if _, err := svc.English.Add(ctx, english.Input{Title: "IELTS 6.5", Progress: 30}); err != nil {
		return err
	}

	// Prayers seed their defaults on first read.
	_, err = svc.Prayers.List(ctx)
	return err
}
