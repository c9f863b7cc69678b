package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestAppendCreatesLog(t *testing.T) {
	t.Chdir(t.TempDir())

	id, err := Append(&Entry{Kind: "llm_call", Row: 3, Model: "claude", Prompt: "p", Response: "r"})
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if !strings.HasPrefix(id, idPrefix) {
		t.Errorf("id = %q", id)
	}

	data, err := os.ReadFile(filepath.Join(".flora", FileName))
	if err != nil {
		t.Fatalf("log not created: %v", err)
	}
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if e.Row != 3 || e.Kind != "llm_call" || e.CreatedAt.IsZero() {
		t.Errorf("entry = %+v", e)
	}
}

func TestAppendRequiresKind(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := Append(&Entry{}); err == nil {
		t.Error("expected error for missing kind")
	}
	if _, err := Append(nil); err == nil {
		t.Error("expected error for nil entry")
	}
}

func TestConcurrentAppends(t *testing.T) {
	t.Chdir(t.TempDir())

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(row int) {
			defer wg.Done()
			if _, err := Append(&Entry{Kind: "llm_call", Row: row}); err != nil {
				t.Errorf("Append: %v", err)
			}
		}(i)
	}
	wg.Wait()

	f, err := os.Open(filepath.Join(".flora", FileName))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Errorf("corrupt line: %v", err)
		}
		lines++
	}
	if lines != n {
		t.Errorf("got %d lines, want %d", lines, n)
	}
}
