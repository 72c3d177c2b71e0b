package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thand-io/gitlab-client/internal/common"
	"github.com/thand-io/gitlab-client/internal/config"
	"github.com/thand-io/gitlab-client/internal/models"
	"github.com/thand-io/gitlab-client/internal/query"
)

// record is what the text renderer needs from an entity.
type record interface {
	Fields() []string
	Get(name string) (models.Value, error)
}

type printer struct {
	out    io.Writer
	format string
	filter *query.Filter
}

func newPrinter(cmd *cobra.Command, s *state) (*printer, error) {
	p := &printer{
		out:    cmd.OutOrStdout(),
		format: config.OutputFormatJSON,
	}

	if s.cfg != nil && len(s.cfg.Output.Format) > 0 {
		p.format = strings.ToLower(s.cfg.Output.Format)
	}

	expression, err := cmd.Flags().GetString("jq")
	if err == nil && len(expression) > 0 {
		p.filter, err = query.Compile(expression)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// print renders an entity, a slice of entities or any plain value.
func (p *printer) print(v any) error {
	if p.filter != nil {
		results, err := p.filter.Run(v)
		if err != nil {
			return err
		}
		for _, result := range results {
			if err := p.render(result); err != nil {
				return err
			}
		}
		return nil
	}

	return p.render(v)
}

// success reports the outcome of an action that returns only a boolean.
func (p *printer) success(ok bool, message string) error {
	if p.format == config.OutputFormatText && p.filter == nil {
		if ok {
			_, err := fmt.Fprintln(p.out, successStyle.Render("✓ "+message))
			return err
		}
		_, err := fmt.Fprintln(p.out, errorStyle.Render("✗ "+message))
		return err
	}
	return p.print(map[string]any{"ok": ok})
}

func (p *printer) render(v any) error {
	switch p.format {
	case config.OutputFormatYAML:
		plain, err := common.ConvertInterfaceToPlain(v)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(plain)
		if err != nil {
			return err
		}
		_, err = p.out.Write(data)
		return err

	case config.OutputFormatText:
		return p.renderText(v)

	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(p.out, string(data))
		return err
	}
}

func (p *printer) renderText(v any) error {
	switch t := v.(type) {
	case record:
		return p.renderRecord(t)
	case []*models.Key:
		for i, key := range t {
			if i > 0 {
				fmt.Fprintln(p.out)
			}
			if err := p.renderRecord(key); err != nil {
				return err
			}
		}
		if len(t) == 0 {
			fmt.Fprintln(p.out, mutedStyle.Render("(none)"))
		}
		return nil
	case map[string]any, []any:
		return p.renderYAMLish(t)
	case nil:
		_, err := fmt.Fprintln(p.out, "null")
		return err
	default:
		_, err := fmt.Fprintln(p.out, t)
		return err
	}
}

func (p *printer) renderRecord(r record) error {
	width := 0
	for _, field := range r.Fields() {
		if len(field) > width {
			width = len(field)
		}
	}

	for _, field := range r.Fields() {
		value, err := r.Get(field)
		if err != nil {
			return err
		}
		label := keyStyle.Render(fmt.Sprintf("%-*s", width, field))
		if _, err := fmt.Fprintf(p.out, "%s  %s\n", label, value.String()); err != nil {
			return err
		}
	}

	return nil
}

func (p *printer) renderYAMLish(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = p.out.Write(data)
	return err
}
