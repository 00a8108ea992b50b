package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"pkrms_db/internal/schema"
	"pkrms_db/internal/workbook"
)

type headerOptions struct {
	workbook.Header
}

func (o *headerOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.Status, "status", "", "submitter level: provincial or kabupaten")
	cmd.Flags().StringVar(&o.Province, "province", "", "selected province")
	cmd.Flags().StringVar(&o.Kabupaten, "kabupaten", "", "selected kabupaten (kabupaten status only)")
	cmd.Flags().StringVar(&o.LGName, "lg-name", "", "local government name")
	cmd.Flags().StringVar(&o.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&o.Phone, "phone", "", "contact phone; +62 is added when missing")
}

func (o *headerOptions) validate() error {
	switch strings.TrimSpace(o.Status) {
	case "provincial", "kabupaten":
	case "":
		return errors.New("--status is required")
	default:
		return errors.New("--status must be provincial or kabupaten")
	}
	if strings.TrimSpace(o.Province) == "" {
		return errors.New("--province is required")
	}
	if o.Status == "kabupaten" && strings.TrimSpace(o.Kabupaten) == "" {
		return errors.New("--kabupaten is required for kabupaten status")
	}
	if strings.TrimSpace(o.LGName) == "" {
		return errors.New("--lg-name is required")
	}
	return nil
}

// buildBatch reads one workbook per entity; each file is named after its entity.
func buildBatch(header workbook.Header, paths []string) (map[string]any, error) {
	reg := schema.Default()
	sheets := make(map[string][]workbook.Row, len(paths))
	for _, p := range paths {
		entity, err := workbook.EntityFromPath(reg, p)
		if err != nil {
			return nil, err
		}
		rows, err := workbook.ReadFile(p)
		if err != nil {
			return nil, err
		}
		sheets[entity] = rows
	}
	return workbook.BuildBatch(header, sheets), nil
}
