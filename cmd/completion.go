package cmd

import (
	"github.com/etnz/savings/config"
	"github.com/etnz/savings/docs"
	"github.com/etnz/savings/storage"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/rs/zerolog"
)

// predictGoals suggests the ids of the stored goals.
var predictGoals = complete.PredictFunc(func(prefix string) []string {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil
	}
	backend, closer, err := newBackend(cfg)
	if err != nil {
		return nil
	}
	if closer != nil {
		defer closer.Close()
	}
	goals := storage.NewGoalStore(backend, zerolog.Nop()).Load()
	ids := make([]string, 0, len(goals))
	for _, g := range goals {
		ids = append(ids, g.ID)
	}
	return ids
})

var predictTopics = complete.PredictFunc(func(prefix string) []string {
	topics, _ := docs.GetAllTopics()
	return append(topics, "readme")
})

var goalFlagsPrediction = map[string]complete.Predictor{
	"t":        predict.Something,
	"s":        predict.Something,
	"c":        predict.Set{"USD", "IDR", "EUR", "GBP", "JPY"},
	"i":        predict.Something,
	"color":    predict.Something,
	"desc":     predict.Something,
	"deadline": predict.Something,
}

// Completion returns the shell completion of the sgs command line.
func Completion() *complete.Command {
	goal := &complete.Command{Args: predictGoals}
	edit := &complete.Command{Flags: map[string]complete.Predictor{"title": predict.Something, "record": predict.Nothing}, Args: predictGoals}
	for k, v := range goalFlagsPrediction {
		edit.Flags[k] = v
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"new":      {Flags: goalFlagsPrediction},
			"edit":     edit,
			"rm":       goal,
			"deposit":  goal,
			"withdraw": goal,
			"up":       goal,
			"down":     goal,
			"reorder":  goal,
			"list":     {Flags: map[string]complete.Predictor{"full": predict.Nothing}},
			"show":     {Flags: map[string]complete.Predictor{"history": predict.Nothing}, Args: predictGoals},
			"theme":    {Args: predict.Set{"light", "dark", "toggle"}},
			"export":   {Flags: map[string]complete.Predictor{"o": predict.Files("*")}},
			"topic":    {Args: predictTopics},
		},
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
			"v":      predict.Nothing,
			"raw":    predict.Nothing,
		},
	}
}
