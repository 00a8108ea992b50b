package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type pushOptions struct {
	headerOptions
	BaseURL   string
	BatchPath string
	Timeout   time.Duration
}

func newPushCmd() *cobra.Command {
	var opts pushOptions

	cmd := &cobra.Command{
		Use:   "push --base-url <url> (--batch <file> | [flags] <Entity>.xlsx...)",
		Short: "Upload a batch to the ingestion server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(opts.BaseURL) == "" {
				return errors.New("--base-url is required")
			}

			var body []byte
			switch {
			case opts.BatchPath != "" && len(args) > 0:
				return errors.New("--batch and workbook arguments are mutually exclusive")
			case opts.BatchPath != "":
				data, err := os.ReadFile(opts.BatchPath)
				if err != nil {
					return err
				}
				body = data
			case len(args) > 0:
				if err := opts.validate(); err != nil {
					return err
				}
				batch, err := buildBatch(opts.Header, args)
				if err != nil {
					return err
				}
				if body, err = json.Marshal(batch); err != nil {
					return err
				}
			default:
				return errors.New("either --batch or at least one workbook is required")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.Timeout)
			defer cancel()
			status, resp, err := push(ctx, newHTTPClient(), opts.BaseURL, body)
			if err != nil {
				return err
			}

			var pretty bytes.Buffer
			if json.Indent(&pretty, resp, "", "  ") == nil {
				resp = pretty.Bytes()
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(resp))

			if status != http.StatusCreated {
				return fmt.Errorf("upload not fully accepted: status=%d", status)
			}
			return nil
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&opts.BaseURL, "base-url", "http://localhost:8080", "server base URL")
	cmd.Flags().StringVar(&opts.BatchPath, "batch", "", "batch JSON file produced by convert")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 5*time.Minute, "request timeout")
	return cmd
}

func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:    10,
			IdleConnTimeout: 90 * time.Second,
		},
	}
}

func push(ctx context.Context, client *http.Client, baseURL string, body []byte) (int, []byte, error) {
	url := strings.TrimRight(baseURL, "/") + "/api/upload-data/"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, data, nil
}
