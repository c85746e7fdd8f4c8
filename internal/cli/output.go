package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"task-cli/internal/config"
	"task-cli/internal/domain"
	"task-cli/internal/errors"
	"task-cli/internal/repository/jsonfile"
)

// TaskRenderer writes a list of tasks in one output format
type TaskRenderer interface {
	Render(w io.Writer, tasks []*domain.Task) error
}

// NewRenderer returns the renderer for format.
// timeFormat is the layout used for timestamps in text output.
func NewRenderer(format, timeFormat string) (TaskRenderer, error) {
	switch format {
	case config.FormatText:
		return &textRenderer{timeFormat: timeFormat}, nil
	case config.FormatJSON:
		return &jsonRenderer{}, nil
	case config.FormatYAML:
		return &yamlRenderer{}, nil
	case config.FormatCSV:
		return &csvRenderer{}, nil
	default:
		return nil, errors.NewInvalidArgumentError("format", format,
			fmt.Sprintf("Invalid list format: %s. Use text, json, yaml or csv.", format))
	}
}

// textRenderer prints one line per task:
// id. description - status (Created at: createdAt, Updated at: updatedAt)
type textRenderer struct {
	timeFormat string
}

func (r *textRenderer) Render(w io.Writer, tasks []*domain.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "No tasks found.")
		return err
	}
	for _, t := range tasks {
		_, err := fmt.Fprintf(w, "%d. %s - %s (Created at: %s, Updated at: %s)\n",
			t.ID, t.Description, t.Status,
			t.CreatedAt.Format(r.timeFormat), t.UpdatedAt.Format(r.timeFormat))
		if err != nil {
			return err
		}
	}
	return nil
}

// jsonRenderer writes the same document layout as the task file
type jsonRenderer struct{}

func (r *jsonRenderer) Render(w io.Writer, tasks []*domain.Task) error {
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(tasks)
}

type yamlRenderer struct{}

func (r *yamlRenderer) Render(w io.Writer, tasks []*domain.Task) error {
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tasks); err != nil {
		return err
	}
	return enc.Close()
}

// csvRenderer writes a header row followed by one row per task
type csvRenderer struct{}

var csvHeader = []string{"id", "description", "status", "createdAt", "updatedAt"}

func (r *csvRenderer) Render(w io.Writer, tasks []*domain.Task) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, t := range tasks {
		row := []string{
			strconv.FormatInt(t.ID, 10),
			t.Description,
			string(t.Status),
			jsonfile.FormatTimestamp(t.CreatedAt),
			jsonfile.FormatTimestamp(t.UpdatedAt),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
