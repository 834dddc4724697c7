// Generates the per-subcommand markdown, man and tldr pages from
// docs/templates/jcmp.yaml. Run as: go run tools/docsgen/main.go docs
package main

import (
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Subcommands []Subcommand `yaml:"subcommands"`
	Common      Common       `yaml:"common"`
}

type Common struct {
	Flags []Flag `yaml:"flags"`
}

type Subcommand struct {
	ID          string    `yaml:"id"`
	Short       string    `yaml:"short"`
	Description string    `yaml:"description"`
	Usage       string    `yaml:"usage"`
	Flags       []Flag    `yaml:"flags"`
	Examples    []Example `yaml:"examples"`
	Notes       []string  `yaml:"notes,omitempty"`
}

type Flag struct {
	ID          string `yaml:"id"`
	Syntax      string `yaml:"syntax"`
	Description string `yaml:"description"`
	Default     string `yaml:"default,omitempty"`
	More        string `yaml:"more,omitempty"`
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type TemplateData struct {
	Subcommand
	Date    string
	Version string
	IDUpper string
}

type Output struct {
	Template string
	Folder   string
	Prefix   string
	Suffix   string
}

func main() {
	docs := os.Args[1]

	raw, err := os.ReadFile(docs + "/templates/jcmp.yaml")
	if err != nil {
		panic(err)
	}
	var config Config
	if err := yaml.Unmarshal(raw, &config); err != nil {
		panic(err)
	}

	outputs := []Output{
		{Template: docs + "/templates/jcmp.md.tmpl", Folder: docs + "/commands/", Suffix: ".md"},
		{Template: docs + "/templates/jcmp.man.tmpl", Folder: docs + "/man/share/man1/", Prefix: "jcmp-", Suffix: ".1"},
		{Template: docs + "/templates/jcmp.tldr.tmpl", Folder: docs + "/tldr/", Prefix: "jcmp-", Suffix: ".md"},
	}

	version := gitVersion()
	date := time.Now().Format("January 2, 2006")

	for _, sub := range config.Subcommands {
		// Every page shows the common flags merged with the subcommand's own,
		// alphabetically.
		sub.Flags = append(append([]Flag{}, config.Common.Flags...), sub.Flags...)
		sort.Slice(sub.Flags, func(i, j int) bool {
			return sub.Flags[i].ID < sub.Flags[j].ID
		})

		data := TemplateData{
			Subcommand: sub,
			Date:       date,
			Version:    version,
			IDUpper:    strings.ToUpper(sub.ID),
		}

		for _, out := range outputs {
			if err := render(out, sub.ID, data); err != nil {
				panic(err)
			}
		}
	}
}

func render(out Output, id string, data TemplateData) error {
	if err := os.MkdirAll(out.Folder, 0755); err != nil {
		return err
	}

	path := out.Folder + out.Prefix + id + out.Suffix
	fmt.Println("Generating", path)

	tmpl, err := template.ParseFiles(out.Template)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return tmpl.Execute(file, data)
}

// gitVersion returns the latest tag without its "v" prefix, or "dev" when
// not in a tagged checkout.
func gitVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}
	return strings.TrimPrefix(strings.TrimSpace(string(out)), "v")
}
