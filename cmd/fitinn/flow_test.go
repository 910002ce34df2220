package fitinn

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runFitinn(t *testing.T, dbPath string, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"--db", dbPath}, args...))
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("fitinn %s failed: %v", strings.Join(args, " "), err)
	}
	return buf.String()
}

func TestWeekInTheLifeFlow(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fitinn.db")

	runFitinn(t, dbPath, "init")
	runFitinn(t, dbPath,
		"profile", "set",
		"--gender", "male",
		"--age", "30",
		"--height", "175",
		"--weight", "80",
		"--goal", "lose",
		"--occupation", "sedentary",
		"--daily-activity", "moderate",
		"--training", "3",
		"--effort", "elaborate",
		"--slots", "breakfast,morning-snack,lunch,dinner",
	)

	out := runFitinn(t, dbPath, "profile", "show")
	if !strings.Contains(out, "TDEE: 2489 kcal") || !strings.Contains(out, "Target: 1989 kcal") {
		t.Fatalf("unexpected targets in profile output:\n%s", out)
	}

	out = runFitinn(t, dbPath, "plan", "generate", "--date", "2026-09-07", "--days", "2", "--seed", "7")
	if !strings.Contains(out, "Plan for 2026-09-07") || !strings.Contains(out, "Plan for 2026-09-08") {
		t.Fatalf("expected two day plans:\n%s", out)
	}
	if !strings.Contains(out, "breakfast") || !strings.Contains(out, "dinner") {
		t.Fatalf("expected breakfast and dinner slots:\n%s", out)
	}

	runFitinn(t, dbPath, "plan", "eaten", "breakfast", "--date", "2026-09-07")
	out = runFitinn(t, dbPath, "plan", "show", "--date", "2026-09-07")
	if !strings.Contains(out, "[x] 07:30") {
		t.Fatalf("breakfast not marked eaten:\n%s", out)
	}

	out = runFitinn(t, dbPath, "shopping", "list", "--from", "2026-09-07", "--to", "2026-09-08")
	if strings.Contains(out, "No planned meals") {
		t.Fatalf("expected shopping items:\n%s", out)
	}

	runFitinn(t, dbPath, "water", "log", "--ml", "500", "--date", "2026-09-07")
	out = runFitinn(t, dbPath, "water", "show", "--date", "2026-09-07")
	if !strings.Contains(out, "500 ml of 3.1 l") {
		t.Fatalf("unexpected water status:\n%s", out)
	}

	runFitinn(t, dbPath, "log", "add", "--name", "Espresso", "--calories", "2", "--date", "2026-09-07")
	out = runFitinn(t, dbPath, "log", "show", "--date", "2026-09-07")
	if !strings.Contains(out, "Espresso") {
		t.Fatalf("manual food log missing:\n%s", out)
	}
}
