package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fredsor/filter"
	"github.com/s0up4200/fredsor/fred"
)

// serviceErrorBody is the error document FRED returns with 4xx responses
type serviceErrorBody struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_message"`
}

// runQuery performs a single request and renders its result.
func runQuery(cmd *cobra.Command, call fred.Call) error {
	result, err := call(cmd.Context())
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), result, whereExpr)
}

// render writes a result to w. Non-success outcomes are returned as errors so
// the process exits non-zero.
func render(w io.Writer, result fred.Result, where string) error {
	switch r := result.(type) {
	case *fred.Success:
		if r.Format != fred.FormatObject {
			_, err := w.Write(r.Body)
			return err
		}
		if where != "" {
			if err := applyWhere(r.Object, where); err != nil {
				return err
			}
		}
		return writeJSON(w, r.Object)
	case *fred.ServiceError:
		logger.Error().Int("status", r.Status).Msg("FRED rejected the request")
		return fmt.Errorf("FRED returned status %d: %s", r.Status, serviceMessage(r.Body))
	case *fred.TransportFailure:
		logger.Error().Err(r.Cause).Msg("Request did not complete")
		return r
	default:
		return fmt.Errorf("unexpected result %T", result)
	}
}

// renderBatch writes results keyed by id as a single JSON object, in the
// order the ids were given. The first failed result becomes the error after
// everything else has been written.
func renderBatch(w io.Writer, ids []string, results map[string]fred.Result, where string) error {
	out := make(map[string]any, len(results))
	var errs []error
	for _, id := range ids {
		result, ok := results[id]
		if !ok {
			continue
		}
		success, ok := result.(*fred.Success)
		if !ok {
			errs = append(errs, fmt.Errorf("%s: %w", id, render(io.Discard, result, "")))
			continue
		}
		if success.Format != fred.FormatObject {
			out[id] = string(success.Body)
			continue
		}
		if where != "" {
			if err := applyWhere(success.Object, where); err != nil {
				return fmt.Errorf("%s: %w", id, err)
			}
		}
		out[id] = success.Object
	}

	if err := writeJSON(w, out); err != nil {
		return err
	}
	return errors.Join(errs...)
}

func applyWhere(object any, where string) error {
	f, err := filter.Compile(where)
	if err != nil {
		return fmt.Errorf("invalid --where expression: %w", err)
	}
	kept, err := filter.ApplyToResponse(f, object)
	if err != nil {
		return fmt.Errorf("--where: %w", err)
	}
	logger.Debug().Str("where", where).Int("kept", kept).Msg("Filtered records")
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// serviceMessage extracts FRED's error_message, falling back to the raw body.
func serviceMessage(body []byte) string {
	var doc serviceErrorBody
	if err := json.Unmarshal(body, &doc); err == nil && doc.Message != "" {
		return doc.Message
	}
	if len(body) == 0 {
		return "empty response body"
	}
	return string(body)
}
