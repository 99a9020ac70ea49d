package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/avolkov/outreach/internal/config"
	"github.com/avolkov/outreach/internal/database"
	"github.com/avolkov/outreach/internal/database/contacts"
	"github.com/avolkov/outreach/internal/importers"
)

// ContactsImportCommand imports contacts from a CSV or XLSX file
// straight into the local database. This is the direct transport path:
// no HTTP involved, same pipeline.
type ContactsImportCommand struct {
	FilePath     string
	DatabasePath string
	UserID       string
	NoHeader     bool
	DryRun       bool
}

func NewContactsImportCommand() *ContactsImportCommand {
	return &ContactsImportCommand{}
}

func (cmd *ContactsImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to the contacts file, .csv or .xlsx (required)")
	fs.StringVar(&cmd.UserID, "user", "", "Owner id the imported contacts belong to (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.BoolVar(&cmd.NoHeader, "no-header", false, "Treat the first row as data; columns follow the template order")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Parse and transform only, without writing to the database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import -file <path> -user <id> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import contacts from a CSV or Excel file into the local database.\n\n")
		fmt.Fprintf(os.Stderr, "Rows that fail to persist are counted and skipped; the rest of the\n")
		fmt.Fprintf(os.Stderr, "batch still imports.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s import -file contacts.csv -user acme-owner\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s import -file export.xlsx -user acme-owner -dry-run\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}
	if cmd.UserID == "" {
		return fmt.Errorf("required flag -user not provided")
	}

	return nil
}

func (cmd *ContactsImportCommand) Run() error {
	info, err := os.Stat(cmd.FilePath)
	if os.IsNotExist(err) {
		return fmt.Errorf("contacts file not found: %s", cmd.FilePath)
	}
	if err != nil {
		return fmt.Errorf("failed to stat contacts file: %w", err)
	}

	if err := importers.ValidateUpload(cmd.FilePath, info.Size()); err != nil {
		return err
	}

	file, err := os.Open(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("failed to open contacts file: %w", err)
	}
	defer file.Close()

	var rows []importers.Row
	switch {
	case cmd.NoHeader:
		rows, err = importers.ParseCSV(file, false)
	default:
		rows, err = importers.ParseUpload(cmd.FilePath, file)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", cmd.FilePath, err)
	}

	records := importers.RecordsFromRows(rows)
	fmt.Printf("Parsed %d records from %s\n", len(records), cmd.FilePath)

	if cmd.DryRun {
		fmt.Println("DRY RUN MODE - no changes were made")
		return nil
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	pipeline := importers.NewPipeline(contacts.NewRepository(db.DB))
	result := pipeline.Import(cmd.UserID, records)

	fmt.Printf("Imported %d contacts, %d failed\n", result.Success, result.Failed)
	return nil
}
