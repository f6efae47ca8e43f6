package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/lafaom-mao/portal/internal/catalog"
	"github.com/lafaom-mao/portal/internal/clients/lafaom"
	"github.com/lafaom-mao/portal/internal/entities"
	"github.com/lafaom-mao/portal/internal/store"
	"github.com/spf13/cobra"
)

var trainingsCmd = &cobra.Command{
	Use:   "trainings",
	Short: "List training programs",
	RunE:  runTrainings,
}

var trainingsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one training with its scheduled sessions",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrainingsShow,
}

var (
	trainingsPage     int
	trainingsSearch   string
	trainingsType     string
	trainingsStatus   string
	trainingsDuration int
)

func init() {
	trainingsCmd.Flags().IntVar(&trainingsPage, "page", 1, "Page to display")
	trainingsCmd.Flags().StringVar(&trainingsSearch, "search", "", "Text search over title and presentation")
	trainingsCmd.Flags().StringVar(&trainingsType, "type", "", "Only trainings of this type (On-Site, Online, Hybrid)")
	trainingsCmd.Flags().StringVar(&trainingsStatus, "status", "", "Only trainings with this status")
	trainingsCmd.Flags().IntVar(&trainingsDuration, "max-duration", 0, "Only trainings at most this long")

	trainingsCmd.AddCommand(trainingsShowCmd)
	rootCmd.AddCommand(trainingsCmd)
}

func runTrainings(cmd *cobra.Command, args []string) error {

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	snapshots, err := a.openDb()
	if err != nil {
		return err
	}

	list := catalog.NewListWithSnapshots(store.CollectionTrainings,
		func(ctx context.Context, page int) (*lafaom.Page[entities.Training], error) {
			return a.client.Trainings(ctx, lafaom.PageParams{Page: page})
		},
		snapshots,
		func(t entities.Training) string { return t.ID })

	if err := list.Load(cmd.Context(), trainingsPage); err != nil {
		return err
	}

	list.Filter(func(t entities.Training) bool {
		return catalog.MatchesSearch(trainingsSearch, t.Title, t.Presentation) &&
			catalog.MatchesExact(trainingsType, string(t.TrainingType)) &&
			catalog.MatchesExact(trainingsStatus, string(t.Status)) &&
			(trainingsDuration == 0 || t.Duration <= trainingsDuration)
	})

	list.Render(os.Stdout, renderTrainingCard)
	return nil
}

func renderTrainingCard(w io.Writer, training entities.Training) {
	fmt.Fprintf(w, "%s  [%s, %s]\n", training.Title, training.TrainingType, training.Status)
	fmt.Fprintf(w, "    %d %s\n", training.Duration, training.DurationUnit)
	fmt.Fprintf(w, "    %s\n", catalog.Truncate(catalog.StripHTML(training.Presentation), 120))
	fmt.Fprintf(w, "    (id %s)\n", training.ID)
}

func runTrainingsShow(cmd *cobra.Command, args []string) error {

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	details := lafaom.NewCachedDetails(a.client)

	training, err := details.Training(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	w := os.Stdout
	fmt.Fprintf(w, "%s  [%s, %s]\n", training.Title, training.TrainingType, training.Status)
	fmt.Fprintf(w, "Duration: %d %s\n", training.Duration, training.DurationUnit)

	printSection := func(name, html string) {
		if html == "" {
			return
		}
		fmt.Fprintf(w, "\n%s\n  %s\n", name, catalog.StripHTML(html))
	}
	printSection("Presentation", training.Presentation)
	printSection("Skills you will gain", training.TargetSkills)
	printSection("Program", training.Program)
	printSection("Audience", training.TargetAudience)
	printSection("Prerequisites", training.Prerequisites)
	printSection("Enrollment", training.Enrollment)

	sessions, err := details.TrainingSessions(cmd.Context(), training.ID)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\nSessions:")
	if len(sessions) == 0 {
		fmt.Fprintln(w, "  no sessions scheduled")
		return nil
	}
	for _, s := range sessions {
		slots := "unlimited"
		if s.AvailableSlots > 0 {
			slots = strconv.Itoa(s.AvailableSlots)
		}
		fmt.Fprintf(w, "  %s  %s to %s  [%s]\n", s.ID,
			s.StartDate.Format(time.DateOnly), s.EndDate.Format(time.DateOnly), s.Status)
		fmt.Fprintf(w, "      register before %s, fee %.0f %s + %.0f %s registration, %s slots\n",
			s.RegistrationDeadline.Format(time.DateOnly),
			s.TrainingFee, s.Currency, s.RegistrationFee, s.Currency, slots)
	}
	return nil
}
