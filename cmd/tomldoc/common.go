package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oarkflow/tomldoc/element"
	"github.com/oarkflow/tomldoc/internal/config"
)

// loggerField is a thin shim over zap.String, kept so command files don't
// need their own zap import just to attach one field to a log line.
func loggerField(key, value string) zap.Field {
	return zap.String(key, value)
}

// scalarString renders a Value the way it would read in a TOML document,
// e.g. for `tomldoc get`'s scalar output path.
func scalarString(v element.Value) string {
	switch v.Kind() {
	case element.KindString:
		return v.String()
	case element.KindInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case element.KindBigDecimal:
		return v.BigDecimal().String()
	case element.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
	case element.KindBool:
		return strconv.FormatBool(v.Bool())
	case element.KindDate:
		return v.Date().Format("2006-01-02T15:04:05Z07:00")
	default:
		return ""
	}
}

// splitPath turns a dotted CLI argument ("owner.name") into its segments.
func splitPath(name string) []string {
	if name == "" {
		return nil
	}
	return strings.Split(name, ".")
}

// navigatePrimitive walks a Primitive() result by dotted path segments.
func navigatePrimitive(root map[string]any, path []string) (any, bool) {
	var cur any = root
	for _, seg := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// parseValue heuristically converts a raw CLI string into the Go value
// tomldoc.File.Set expects: booleans and numbers are recognized, everything
// else is kept as a string. Use --string to force string interpretation of
// a value that would otherwise parse as a number or boolean.
func parseValue(raw string, forceString bool) any {
	if forceString {
		return raw
	}
	if raw == "true" {
		return true
	}
	if raw == "false" {
		return false
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

// writeBack overwrites path with data, leaving a .bak-<uuid> sibling first
// when cfg.BackupOn is set.
func writeBack(path string, data []byte, cfg *config.Config) error {
	if cfg.BackupOn {
		orig, err := os.ReadFile(path)
		if err == nil {
			backupPath := config.BackupPath(path, uuid.NewString())
			if err := os.WriteFile(backupPath, orig, 0o644); err != nil {
				return fmt.Errorf("writing backup %s: %w", backupPath, err)
			}
		}
	}
	return os.WriteFile(path, data, 0o644)
}
