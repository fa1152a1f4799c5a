package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/germanamz/agentdesk/pkg/agentform"
	"github.com/germanamz/agentdesk/pkg/catalog"
	"github.com/germanamz/agentdesk/pkg/weights"
)

// errEditorCancelled is returned when the operator leaves without saving.
var errEditorCancelled = errors.New("edit cancelled")

// runAgentEditor drives the interactive editing session for f: the details
// form, parameter add/edit/remove, and save. Save stays blocked while the
// form is invalid. onSave is only called with a valid agent.
func runAgentEditor(f *agentform.Form, onSave agentform.SaveFunc) error {
	for {
		var choice string

		if err := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title(editorTitle(f)).
				Description(editorStatus(f)).
				Options(editorMenuOptions(f)...).
				Value(&choice),
		)).Run(); err != nil {
			return err
		}

		switch {
		case choice == "details":
			if err := editDetailsForm(f); err != nil {
				return err
			}
		case choice == "add":
			p := f.Weights.Add()
			if err := editParameterForm(f.Weights, p.ID); err != nil {
				return err
			}
		case strings.HasPrefix(choice, "edit:"):
			if err := editParameterForm(f.Weights, strings.TrimPrefix(choice, "edit:")); err != nil {
				return err
			}
		case strings.HasPrefix(choice, "remove:"):
			f.Weights.Remove(strings.TrimPrefix(choice, "remove:"))
		case choice == "save":
			saved, err := f.Save(onSave)
			if err != nil {
				return err
			}
			if saved {
				return nil
			}
			// Still invalid: the status line lists what is missing.
		case choice == "cancel":
			return errEditorCancelled
		}
	}
}

func editorTitle(f *agentform.Form) string {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		name = "New agent"
	}

	return fmt.Sprintf("%s · %s · total weight %d%%", name, pluralize(f.Weights.Len(), "parameter"), f.Weights.Total())
}

// editorStatus is the inline validation line under the menu title.
func editorStatus(f *agentform.Form) string {
	problems := f.Problems()
	if len(problems) == 0 {
		return "Ready to save."
	}

	return strings.Join(problems, "; ")
}

// editorMenuOptions lists the editor actions. Save is labelled as blocked
// while the form is invalid.
func editorMenuOptions(f *agentform.Form) []huh.Option[string] {
	opts := []huh.Option[string]{
		huh.NewOption("Edit details (name, role, description, model)", "details"),
		huh.NewOption("Add parameter", "add"),
	}

	params := f.Weights.Parameters()

	for _, p := range params {
		opts = append(opts, huh.NewOption(fmt.Sprintf("Edit: %s (%d%%)", paramLabel(p), p.Weight), "edit:"+p.ID))
	}

	for _, p := range params {
		opts = append(opts, huh.NewOption(fmt.Sprintf("Remove: %s", paramLabel(p)), "remove:"+p.ID))
	}

	if f.Valid() {
		opts = append(opts, huh.NewOption("Save", "save"))
	} else {
		opts = append(opts, huh.NewOption("Save (blocked until valid)", "save"))
	}

	return append(opts, huh.NewOption("Cancel", "cancel"))
}

func paramLabel(p weights.Parameter) string {
	if strings.TrimSpace(p.Name) == "" {
		return "(unnamed)"
	}
	return p.Name
}

// editDetailsForm shows a pre-filled form for the agent's required fields.
func editDetailsForm(f *agentform.Form) error {
	models := catalog.Models()

	modelOpts := make([]huh.Option[string], len(models))
	for i, m := range models {
		modelOpts[i] = huh.NewOption(m, m)
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name").Value(&f.Name),
		huh.NewInput().Title("Role").Value(&f.Role),
		huh.NewText().Title("Description").Value(&f.Description),
		huh.NewInput().Title("Avatar (emoji, optional)").Value(&f.Avatar),
		huh.NewSelect[string]().Title("Model").Options(modelOpts...).Value(&f.Model),
	)).Run()
}

// editParameterForm edits one parameter. Weights outside 0–100 are clamped
// silently by the editor.
func editParameterForm(e *weights.Editor, id string) error {
	p, ok := e.Get(id)
	if !ok {
		return nil
	}

	name, value := p.Name, p.Value
	weight := strconv.Itoa(p.Weight)

	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Parameter name").Value(&name),
		huh.NewInput().Title("Expected value").Value(&value),
		huh.NewInput().
			Title("Weight (%)").
			Description(fmt.Sprintf("Other parameters total %d%%", e.Total()-p.Weight)).
			Value(&weight).
			Validate(validateInt),
	)).Run(); err != nil {
		return err
	}

	applyParameterEdit(e, id, name, value, weight)

	return nil
}

// applyParameterEdit writes the form values back to the editor.
func applyParameterEdit(e *weights.Editor, id, name, value, weight string) {
	e.SetName(id, name)
	e.SetValue(id, value)

	if w, err := strconv.Atoi(strings.TrimSpace(weight)); err == nil {
		e.SetWeight(id, w)
	}
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return errors.New("must be a whole number")
	}
	return nil
}

// newAgentTemplate is the starting record for `agent new`.
func newAgentTemplate() agentform.Agent {
	return agentform.Agent{
		Model:      catalog.Models()[0],
		Parameters: catalog.DefaultParameters(),
	}
}
