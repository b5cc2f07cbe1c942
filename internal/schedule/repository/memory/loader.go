package memory

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"pharmacy-ops/internal/model"
	"pharmacy-ops/pkg/civil"
)

// taskSpec mirrors one task entry of the definitions file.
type taskSpec struct {
	ID          string          `mapstructure:"id"`
	Title       string          `mapstructure:"title"`
	Frequencies []frequencySpec `mapstructure:"frequencies"`
	Timing      string          `mapstructure:"timing"`
	DueTime     string          `mapstructure:"due_time"`
	DueDate     string          `mapstructure:"due_date"`
	Publish     string          `mapstructure:"publish"`
	PublishFrom string          `mapstructure:"publish_from"`
	ValidFrom   string          `mapstructure:"valid_from"`
	ValidUntil  string          `mapstructure:"valid_until"`
}

type frequencySpec struct {
	Kind    string `mapstructure:"kind"`
	Weekday string `mapstructure:"weekday"`
	Months  []int  `mapstructure:"months"`
}

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// LoadTasksFile reads master task definitions from a YAML file.
func LoadTasksFile(path string) ([]model.MasterTask, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading tasks file: %w", err)
	}

	var specs []taskSpec
	if err := v.UnmarshalKey("tasks", &specs); err != nil {
		return nil, fmt.Errorf("error parsing tasks file: %w", err)
	}

	tasks := make([]model.MasterTask, 0, len(specs))
	for i, spec := range specs {
		task, err := spec.toTask()
		if err != nil {
			return nil, fmt.Errorf("task %d (%s): %w", i, spec.Title, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (s taskSpec) toTask() (model.MasterTask, error) {
	task := model.MasterTask{
		ID:      s.ID,
		Title:   s.Title,
		Timing:  model.TimingCategory(s.Timing),
		Publish: model.PublishStatus(s.Publish),
	}
	if s.Timing == "" {
		task.Timing = model.TimingAnytime
	}
	if s.Publish == "" {
		task.Publish = model.PublishActive
	}

	for _, fs := range s.Frequencies {
		rule := model.FrequencyRule{Kind: model.ParseFrequencyKind(fs.Kind)}
		if rule.Kind == model.FrequencyUnknown {
			return model.MasterTask{}, fmt.Errorf("unknown frequency kind %q", fs.Kind)
		}
		if rule.Kind == model.FrequencyWeekday {
			wd, ok := weekdayNames[strings.ToLower(fs.Weekday)]
			if !ok {
				return model.MasterTask{}, fmt.Errorf("unknown weekday %q", fs.Weekday)
			}
			rule.Weekday = wd
		}
		for _, m := range fs.Months {
			if m < 1 || m > 12 {
				return model.MasterTask{}, fmt.Errorf("month %d out of range", m)
			}
			rule.Months = append(rule.Months, time.Month(m))
		}
		task.Rules = append(task.Rules, rule)
	}

	var err error
	if task.DueDate, err = optionalDate(s.DueDate); err != nil {
		return model.MasterTask{}, err
	}
	if task.PublishFrom, err = optionalDate(s.PublishFrom); err != nil {
		return model.MasterTask{}, err
	}
	if task.ValidFrom, err = optionalDate(s.ValidFrom); err != nil {
		return model.MasterTask{}, err
	}
	if task.ValidUntil, err = optionalDate(s.ValidUntil); err != nil {
		return model.MasterTask{}, err
	}

	if s.DueTime != "" {
		tod, todErr := civil.ParseTimeOfDay(s.DueTime)
		if todErr != nil {
			return model.MasterTask{}, todErr
		}
		task.DueTime = &tod
	}

	return task, nil
}

func optionalDate(s string) (*civil.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
