package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pystart-cli/pystart/internal/scaffold"
)

// PromptForProjectName interactively prompts the user for a project name.
// Used when the positional argument is absent.
func PromptForProjectName(baseDir string, profile scaffold.Profile) (string, error) {
	var name string

	prompt := &survey.Input{
		Message: "Project name",
		Help:    "Directory name for the new project; hyphens become underscores in the package name",
	}

	validator := func(ans interface{}) error {
		s, ok := ans.(string)
		if !ok {
			return fmt.Errorf("expected a string value")
		}
		_, err := scaffold.Validate(s, profile, baseDir)
		return err
	}

	if err := survey.AskOne(prompt, &name, survey.WithValidator(validator)); err != nil {
		return "", err
	}

	return name, nil
}

// PromptForProfile interactively prompts for a template profile.
func PromptForProfile(defaultProfile scaffold.Profile) (scaffold.Profile, error) {
	options := make([]string, 0, len(scaffold.Profiles()))
	for _, p := range scaffold.Profiles() {
		options = append(options, p.String())
	}

	var choice string
	prompt := &survey.Select{
		Message: "Template profile",
		Options: options,
		Default: defaultProfile.String(),
	}

	if err := survey.AskOne(prompt, &choice); err != nil {
		return defaultProfile, err
	}

	return scaffold.ParseProfile(choice)
}
