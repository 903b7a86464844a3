package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sudhansu1991/MIrA/authority"
	"github.com/sudhansu1991/MIrA/tei"
)

var (
	validateMss       string
	validatePeople    string
	validatePlaces    string
	validateTexts     string
	validateLibraries string
	validateVerbose   bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate catalogue XML without converting",
	Long: `Validate the catalogue exports by parsing them and loading the
authority tables, without writing any output.

Reports record counts per file and how many records carry a usable
Wikidata alignment. Useful for checking data quality before running
the conversion.

Examples:
  mira validate
  mira validate --mss exports/mss_2026.xml --verbose`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateMss, "mss", "", "Manuscript description XML (default: from config)")
	validateCmd.Flags().StringVar(&validatePeople, "people", "", "People authority XML (default: from config)")
	validateCmd.Flags().StringVar(&validatePlaces, "places", "", "Places authority XML (default: from config)")
	validateCmd.Flags().StringVar(&validateTexts, "texts", "", "Texts authority XML (default: from config)")
	validateCmd.Flags().StringVar(&validateLibraries, "libraries", "", "Libraries authority XML (default: from config)")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Show per-manuscript summaries")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	mssPath := cfg.Data.Manuscripts
	peoplePath := cfg.Data.People
	placesPath := cfg.Data.Places
	textsPath := cfg.Data.Texts
	librariesPath := cfg.Data.Libraries
	if validateMss != "" {
		mssPath = validateMss
	}
	if validatePeople != "" {
		peoplePath = validatePeople
	}
	if validatePlaces != "" {
		placesPath = validatePlaces
	}
	if validateTexts != "" {
		textsPath = validateTexts
	}
	if validateLibraries != "" {
		librariesPath = validateLibraries
	}

	people, err := tei.DecodePeople(peoplePath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	places, err := tei.DecodePlaces(placesPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	texts, err := tei.DecodeTexts(textsPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	libraries, err := tei.DecodeLibraries(librariesPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	manuscripts, err := tei.DecodeManuscripts(mssPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	tables := authority.Load(people, places, texts, libraries)

	fmt.Printf("✓ Valid: parsed %d person records from %s (%d aligned)\n",
		tables.People.Len(), peoplePath, alignedCount(tables.People))
	fmt.Printf("✓ Valid: parsed %d place records from %s (%d aligned)\n",
		tables.Places.Len(), placesPath, alignedCount(tables.Places))
	fmt.Printf("✓ Valid: parsed %d text records from %s (%d aligned, %d title keys)\n",
		tables.Texts.Len(), textsPath, alignedCount(tables.Texts), len(tables.Works))
	fmt.Printf("✓ Valid: parsed %d library records from %s (%d aligned)\n",
		tables.Libraries.Len(), librariesPath, alignedCount(tables.Libraries))
	fmt.Printf("✓ Valid: parsed %d manuscript records from %s\n",
		len(manuscripts.Items), mssPath)

	if validateVerbose {
		fmt.Println("\nManuscript summary:")
		for i := range manuscripts.Items {
			ms := &manuscripts.Items[i]
			fmt.Printf("\n  Manuscript %d:\n", i+1)
			if ms.ID != "" {
				fmt.Printf("    ID: %s\n", ms.ID)
			} else {
				fmt.Printf("    ID: (missing, synthetic id will be assigned)\n")
			}
			if shelf, ok := ms.Shelfmark(); ok {
				fmt.Printf("    Shelfmark: %s\n", truncate(shelf, 60))
			}
			if lib, ok := ms.LibraryID(); ok {
				fmt.Printf("    Library: %s\n", lib)
			}
			if date, ok := ms.DatingEvidence(); ok {
				fmt.Printf("    Dating: %s\n", truncate(date, 60))
			}
			if place, ok := ms.OriginPlaceID(); ok {
				fmt.Printf("    Origin place: %s\n", place)
			}
			fmt.Printf("    Content titles: %d\n", len(ms.ContentTitles()))
		}
	}

	return nil
}

func alignedCount(s *authority.Set) int {
	n := 0
	for _, e := range s.Entries() {
		if e.Resolved() {
			n++
		}
	}
	return n
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
