package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/avolkov/outreach/internal/importers"
)

// TemplateCommand writes the contact import template file.
type TemplateCommand struct {
	OutPath string
}

func NewTemplateCommand() *TemplateCommand {
	return &TemplateCommand{}
}

func (cmd *TemplateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("template", flag.ExitOnError)

	fs.StringVar(&cmd.OutPath, "out", importers.TemplateFilename, "Where to write the template file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s template [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Write the contact import template CSV. The template's sample row\n")
		fmt.Fprintf(os.Stderr, "imports back cleanly through the pipeline.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *TemplateCommand) Run() error {
	if err := os.WriteFile(cmd.OutPath, []byte(importers.TemplateCSV()), 0644); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	fmt.Printf("Template written to %s\n", cmd.OutPath)
	return nil
}
