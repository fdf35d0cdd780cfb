package downloads_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go.loadout.dev/loadout/internal/adapters/downloads"
	"go.loadout.dev/loadout/internal/core/domain"
	"go.loadout.dev/loadout/internal/core/ports"
	"go.loadout.dev/loadout/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return log
}

func TestFactory_NewTaskRequiresFileName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	factory := downloads.NewFactory(nil, quietLogger(ctrl))
	pack := domain.Package{Name: "Sodium"}

	_, err := factory.NewTask(pack, &domain.Version{ID: "v1"}, ports.Destination{Dir: "mods"}, false)
	if err == nil {
		t.Fatal("Expected an error for a version without a file name")
	}
}

func TestTask_RunDownloadsFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("jar bytes"))
	}))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	factory := downloads.NewFactory(server.Client(), quietLogger(ctrl))

	pack := domain.Package{Name: "Sodium"}
	version := &domain.Version{ID: "v1", FileName: "sodium.jar", DownloadURL: server.URL}

	task, err := factory.NewTask(pack, version, ports.Destination{Dir: dir}, false)
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}
	if task.Name() != "Sodium" {
		t.Errorf("Expected task name Sodium, got %q", task.Name())
	}

	if err := task.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "sodium.jar"))
	if err != nil {
		t.Fatalf("Expected the file to be written: %v", err)
	}
	if string(data) != "jar bytes" {
		t.Errorf("Unexpected file contents: %q", data)
	}
}

func TestTask_RunHonorsCustomPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pack bytes"))
	}))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	factory := downloads.NewFactory(server.Client(), quietLogger(ctrl))

	pack := domain.Package{Name: "Complementary"}
	version := &domain.Version{
		ID:          "v1",
		FileName:    "complementary.zip",
		DownloadURL: server.URL,
		CustomPath:  "shaders/unzipped",
	}

	task, err := factory.NewTask(pack, version, ports.Destination{Dir: dir}, true)
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}
	if err := task.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "shaders", "unzipped", "complementary.zip")); err != nil {
		t.Errorf("Expected the file under the custom path: %v", err)
	}
}

func TestTask_RunRemovesTruncatedFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "1024")
		_, _ = w.Write([]byte("partial"))
	}))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	factory := downloads.NewFactory(server.Client(), quietLogger(ctrl))

	task, err := factory.NewTask(
		domain.Package{Name: "Sodium"},
		&domain.Version{ID: "v1", FileName: "sodium.jar", DownloadURL: server.URL},
		ports.Destination{Dir: dir}, false)
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}

	if err := task.Run(context.Background()); err == nil {
		t.Fatal("Expected an error for a truncated response body")
	}
	if _, err := os.Stat(filepath.Join(dir, "sodium.jar")); !os.IsNotExist(err) {
		t.Error("Expected the truncated file to be removed")
	}
}

func TestTask_RunBadStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	factory := downloads.NewFactory(server.Client(), quietLogger(ctrl))

	task, err := factory.NewTask(
		domain.Package{Name: "Sodium"},
		&domain.Version{ID: "v1", FileName: "sodium.jar", DownloadURL: server.URL},
		ports.Destination{Dir: dir}, false)
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}

	if err := task.Run(context.Background()); err == nil {
		t.Fatal("Expected an error for a non-200 response")
	}
	if _, err := os.Stat(filepath.Join(dir, "sodium.jar")); !os.IsNotExist(err) {
		t.Error("Expected no file to be written on a failed download")
	}
}
