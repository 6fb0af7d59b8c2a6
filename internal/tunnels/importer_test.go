package tunnels

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"wgdesk/internal/mediatype"
	"wgdesk/internal/qr"
)

type fakeDetector struct {
	sourceType mediatype.SourceType
	err        error
	calls      int
}

func (f *fakeDetector) Detect(path string) (mediatype.SourceType, error) {
	f.calls++
	return f.sourceType, f.err
}

type fakeDecoder struct {
	payload string
	err     error
}

func (f *fakeDecoder) Decode(ctx context.Context, path string) (string, error) {
	return f.payload, f.err
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.conf")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func newImporter(dir string, detector SourceDetector, decoder PayloadDecoder) *Importer {
	return &Importer{
		Detector: detector,
		Decoder:  decoder,
		Store:    NewStore(dir),
	}
}

func TestImporter_Import_TextSource(t *testing.T) {
	content := "[Interface]\nPrivateKey = AAAA\n[Peer]\nPublicKey = BBBB\nEndpoint = 1.2.3.4:51820"
	source := writeSource(t, content)
	dir := t.TempDir()

	importer := newImporter(dir, &fakeDetector{sourceType: mediatype.SourceTypeText}, &fakeDecoder{})

	result, err := importer.Import(context.Background(), source, "home")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	written, err := os.ReadFile(result.Path)

	if err != nil {
		t.Fatalf("reading imported config: %v", err)
	}

	if string(written) != content {
		t.Errorf("expected byte-identical content, got %q", written)
	}

	if result.Name != "home" || result.SourceType != mediatype.SourceTypeText {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestImporter_Import_ImageSource(t *testing.T) {
	payload := "[Interface]\nPrivateKey = AAAA"
	dir := t.TempDir()

	importer := newImporter(dir,
		&fakeDetector{sourceType: mediatype.SourceTypeImage},
		&fakeDecoder{payload: payload})

	result, err := importer.Import(context.Background(), "code.png", "scanned")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	written, _ := os.ReadFile(result.Path)

	if string(written) != payload {
		t.Errorf("expected decoded payload persisted, got %q", written)
	}
}

func TestImporter_Import_MalformedConfigWritesNothing(t *testing.T) {
	source := writeSource(t, "[Interface\nPrivateKey = AAAA")
	dir := t.TempDir()

	importer := newImporter(dir, &fakeDetector{sourceType: mediatype.SourceTypeText}, &fakeDecoder{})

	_, err := importer.Import(context.Background(), source, "bad")

	var syntaxErr *SyntaxError

	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}

	if len(syntaxErr.Violations) == 0 {
		t.Error("expected violations to be carried")
	}

	entries, _ := os.ReadDir(dir)

	if len(entries) != 0 {
		t.Errorf("expected no file written on validation failure, got %d entries", len(entries))
	}
}

func TestImporter_Import_EmptyDecodedPayload(t *testing.T) {
	importer := newImporter(t.TempDir(),
		&fakeDetector{sourceType: mediatype.SourceTypeImage},
		&fakeDecoder{err: qr.ErrNoPayload})

	_, err := importer.Import(context.Background(), "code.png", "scanned")

	if !errors.Is(err, qr.ErrNoPayload) {
		t.Fatalf("expected ErrNoPayload, got %v", err)
	}
}

func TestImporter_Import_InvalidNameBeforeAnyIO(t *testing.T) {
	detector := &fakeDetector{sourceType: mediatype.SourceTypeText}
	importer := newImporter(t.TempDir(), detector, &fakeDecoder{})

	_, err := importer.Import(context.Background(), "irrelevant", "../x")

	if !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}

	if detector.calls != 0 {
		t.Error("expected no source inspection before name validation")
	}
}

func TestImporter_Import_MissingSource(t *testing.T) {
	importer := newImporter(t.TempDir(),
		&fakeDetector{err: os.ErrNotExist},
		&fakeDecoder{})

	_, err := importer.Import(context.Background(), "/nope", "home")

	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
}

func TestImporter_Import_EmptyTextSourceContinuesToValidation(t *testing.T) {
	source := writeSource(t, "")
	importer := newImporter(t.TempDir(), &fakeDetector{sourceType: mediatype.SourceTypeText}, &fakeDecoder{})

	_, err := importer.Import(context.Background(), source, "empty")

	var syntaxErr *SyntaxError

	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected validation failure for empty source, got %v", err)
	}
}

func TestImporter_Import_Idempotent(t *testing.T) {
	content := "[Interface]\nPrivateKey = AAAA"
	source := writeSource(t, content)
	dir := t.TempDir()

	importer := newImporter(dir, &fakeDetector{sourceType: mediatype.SourceTypeText}, &fakeDecoder{})

	first, err := importer.Import(context.Background(), source, "home")

	if err != nil {
		t.Fatalf("first import: %v", err)
	}

	second, err := importer.Import(context.Background(), source, "home")

	if err != nil {
		t.Fatalf("second import: %v", err)
	}

	if first.Path != second.Path {
		t.Errorf("expected same destination, got %q and %q", first.Path, second.Path)
	}

	written, _ := os.ReadFile(second.Path)

	if string(written) != content {
		t.Errorf("expected identical final content, got %q", written)
	}
}
