package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/adminkit/pkg/autofill"
	"github.com/dmitrymomot/adminkit/pkg/grade"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	return executeApp(t, newApp(), stdin, args...)
}

func executeApp(t *testing.T, a *app, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := run(context.Background(), root, a)
	return stdout.String(), stderr.String(), err
}

func TestSlugCommand(t *testing.T) {
	t.Run("labels from args", func(t *testing.T) {
		out, _, err := execute(t, "", "slug", "Category 5", "R&D Oversight", "Café Policy")
		require.NoError(t, err)
		assert.Equal(t, "category-5\nr-and-d-oversight\ncafe-policy\n", out)
	})

	t.Run("labels from stdin", func(t *testing.T) {
		out, _, err := execute(t, "Armed Services\r\nÜber Größe\n", "slug")
		require.NoError(t, err)
		assert.Equal(t, "armed-services\nuber-grose\n", out)
	})

	t.Run("blank stdin lines keep their place", func(t *testing.T) {
		out, _, err := execute(t, "Armed Services\n\n   \nJudiciary\n", "slug")
		require.NoError(t, err)
		assert.Equal(t, "armed-services\n\n\njudiciary\n", out)
	})

	t.Run("label longer than the default scanner buffer", func(t *testing.T) {
		long := strings.Repeat("a", 100*1024)

		out, _, err := execute(t, long+"\nB\n", "slug")
		require.NoError(t, err)
		assert.Equal(t, long+"\nb\n", out)
	})

	t.Run("ascii flag", func(t *testing.T) {
		out, _, err := execute(t, "", "slug", "--ascii", "Café Policy")
		require.NoError(t, err)
		assert.Equal(t, "caf-policy\n", out)
	})

	t.Run("max length flag", func(t *testing.T) {
		out, _, err := execute(t, "", "slug", "--max-length", "7", "Cut off cleanly")
		require.NoError(t, err)
		assert.Equal(t, "cut-off\n", out)
	})

	t.Run("negative max length", func(t *testing.T) {
		_, _, err := execute(t, "", "slug", "--max-length", "-1", "x")
		require.Error(t, err)
	})

	t.Run("empty slug is warned about", func(t *testing.T) {
		out, errOut, err := execute(t, "", "slug", "!!!")
		require.NoError(t, err)
		assert.Equal(t, "\n", out)
		assert.Contains(t, errOut, "empty slug")
		assert.Contains(t, errOut, `"command":"adminkit slug"`)
	})

	t.Run("environment selects ascii variant", func(t *testing.T) {
		t.Setenv("ADMINKIT_SLUG_ASCII", "true")

		out, _, err := execute(t, "", "slug", "Café")
		require.NoError(t, err)
		assert.Equal(t, "caf\n", out)
	})

	t.Run("flag overrides environment", func(t *testing.T) {
		t.Setenv("ADMINKIT_SLUG_ASCII", "true")

		out, _, err := execute(t, "", "slug", "--ascii=false", "Café")
		require.NoError(t, err)
		assert.Equal(t, "cafe\n", out)
	})
}

func TestGradesCommand(t *testing.T) {
	t.Run("sort ascending", func(t *testing.T) {
		out, _, err := execute(t, "B\nA-\nB+\nA\nB-\n", "grades", "sort")
		require.NoError(t, err)
		assert.Equal(t, "A\nA-\nB+\nB\nB-\n", out)
	})

	t.Run("sort descending", func(t *testing.T) {
		out, _, err := execute(t, "B\nA-\nB+\nA\nB-\n", "grades", "sort", "--desc")
		require.NoError(t, err)
		assert.Equal(t, "B-\nB\nB+\nA-\nA\n", out)
	})

	t.Run("sort warns on malformed", func(t *testing.T) {
		out, errOut, err := execute(t, "N/A\nC\n", "grades", "sort")
		require.NoError(t, err)
		assert.Equal(t, "C\nN/A\n", out)
		assert.Contains(t, errOut, "malformed")
	})

	t.Run("sort keeps blank cells", func(t *testing.T) {
		out, errOut, err := execute(t, "B\n\nA\n", "grades", "sort")
		require.NoError(t, err)
		assert.Equal(t, "A\nB\n\n", out)
		assert.Contains(t, errOut, `"malformed":1`)
	})

	t.Run("compare", func(t *testing.T) {
		out, _, err := execute(t, "", "grades", "compare", "B+", "B")
		require.NoError(t, err)
		assert.Equal(t, "-1\n", out)

		out, _, err = execute(t, "", "grades", "compare", "--desc", "B+", "B")
		require.NoError(t, err)
		assert.Equal(t, "1\n", out)

		out, _, err = execute(t, "", "grades", "compare", "A", "A")
		require.NoError(t, err)
		assert.Equal(t, "0\n", out)
	})

	t.Run("compare needs two args", func(t *testing.T) {
		_, _, err := execute(t, "", "grades", "compare", "A")
		require.Error(t, err)
	})

	t.Run("class", func(t *testing.T) {
		out, _, err := execute(t, "", "grades", "class", "A+")
		require.NoError(t, err)
		assert.Equal(t, "a-plus-rating\n", out)

		_, errOut, err := execute(t, "", "grades", "class", "Q")
		require.ErrorIs(t, err, grade.ErrUnknownClass)
		assert.Contains(t, errOut, `"msg":"command failed"`)
		assert.Contains(t, errOut, `"command":"adminkit grades class"`)
	})
}

func TestGradesReportCommands(t *testing.T) {
	t.Run("progress", func(t *testing.T) {
		out, _, err := execute(t, "", "grades", "progress", "30", "40")
		require.NoError(t, err)
		assert.Equal(t, "progress-bar-green\n", out)

		out, _, err = execute(t, "", "grades", "progress", "12.5", "0")
		require.NoError(t, err)
		assert.Equal(t, "progress-bar-red\n", out)

		_, _, err = execute(t, "", "grades", "progress", "lots", "40")
		require.ErrorContains(t, err, "percent-max")
	})

	t.Run("congress", func(t *testing.T) {
		out, _, err := execute(t, "", "grades", "congress", "116")
		require.NoError(t, err)
		assert.Equal(t, "116th Congress\n", out)

		_, _, err = execute(t, "", "grades", "congress", "0")
		require.Error(t, err)
	})
}

func TestCommandErrorsReachSentry(t *testing.T) {
	t.Setenv("ADMINKIT_LOG_SENTRY_DSN", "https://public@example.com/1")

	transport := &sentry.MockTransport{}
	a := newApp()
	a.sentryTransport = transport

	_, _, err := executeApp(t, a, "", "grades", "class", "Q")
	require.ErrorIs(t, err, grade.ErrUnknownClass)

	var events []*sentry.Event
	for _, ev := range transport.Events() {
		if ev.Message == "command failed" {
			events = append(events, ev)
		}
	}
	require.Len(t, events, 1)
	assert.Equal(t, sentry.LevelError, events[0].Level)
	assert.Equal(t, "adminkit grades class", events[0].Extra["command"])
	require.NotEmpty(t, events[0].Exception)

	var values []string
	for _, ex := range events[0].Exception {
		values = append(values, ex.Value)
	}
	assert.Contains(t, strings.Join(values, "\n"), `"Q"`)
}

func TestAutofillCommand(t *testing.T) {
	decode := func(t *testing.T, out string) autofill.Fields {
		t.Helper()
		var f autofill.Fields
		require.NoError(t, json.Unmarshal([]byte(out), &f))
		return f
	}

	t.Run("category", func(t *testing.T) {
		out, _, err := execute(t, "", "autofill", "category", "R&D Oversight")
		require.NoError(t, err)
		assert.Contains(t, out, `"seo_title":"Category: R&D Oversight"`)
		assert.Equal(t, autofill.Fields{Slug: "category-r-and-d-oversight", SEOTitle: "Category: R&D Oversight"}, decode(t, out))
	})

	t.Run("category id", func(t *testing.T) {
		out, _, err := execute(t, "", "autofill", "category-id", "12")
		require.NoError(t, err)
		assert.Equal(t, autofill.Fields{Slug: "category-12", SEOTitle: "Category 12"}, decode(t, out))
	})

	t.Run("committee", func(t *testing.T) {
		out, _, err := execute(t, "", "autofill", "committee",
			"ocd-organization/80b44839-0c06-4569-9337-4dda052f5cd5", "Armed Services")
		require.NoError(t, err)
		assert.Equal(t, autofill.Fields{
			Slug:     "committee-80b44839-0c06-4569-9337-4dda052f5cd5",
			SEOTitle: "Armed Services",
		}, decode(t, out))
	})

	t.Run("invalid committee", func(t *testing.T) {
		_, _, err := execute(t, "", "autofill", "committee", "armed-services", "Armed Services")
		require.ErrorIs(t, err, autofill.ErrInvalidCommitteeID)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.False(t, cfg.Slug.ASCII)
		assert.Zero(t, cfg.Slug.MaxLength)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("file and environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "adminkit.yaml")
		require.NoError(t, os.WriteFile(path, []byte("slug:\n  max_length: 20\n  fold_marks: true\nlog:\n  level: debug\n"), 0o600))
		t.Setenv("ADMINKIT_LOG_LEVEL", "error")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 20, cfg.Slug.MaxLength)
		assert.True(t, cfg.Slug.FoldMarks)
		assert.Equal(t, "error", cfg.Log.Level)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "adminkit.yaml")
		require.NoError(t, os.WriteFile(path, []byte("slug: [unclosed\n"), 0o600))

		_, err := LoadConfig(path)
		require.ErrorContains(t, err, "parse config file")
	})

	t.Run("negative max length", func(t *testing.T) {
		t.Setenv("ADMINKIT_SLUG_MAX_LENGTH", "-5")

		_, err := LoadConfig("")
		require.Error(t, err)
	})

	t.Run("slug options", func(t *testing.T) {
		opts := SlugConfig{ASCII: true, FoldMarks: true, MaxLength: 3}.Options()
		assert.Len(t, opts, 3)
	})
}
