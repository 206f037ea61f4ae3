// Package testfixture builds throwaway on-disk Go modules for tests
// that need a real golang.org/x/tools/go/packages.Load rather than a
// hand-built types.Info, mirroring the original's practice of running
// its Clang-AST-matcher tests against short, compilable C++ snippets.
package testfixture

import (
	"os"
	"path/filepath"
	"testing"
)

// RosStubSource holds the declarations of testdata/ros/ros.go (without
// its doc comments), embedded here so
// every fixture module gets its own copy without a cross-module import
// (a temporary module has no access to this repository's own testdata
// directory by path).
const RosStubSource = `package ros

func Init(name string) {}

type NodeHandle struct{}

func NewNodeHandle() *NodeHandle { return &NodeHandle{} }

func (*NodeHandle) Advertise(topic string, queueSize int) Publisher { return Publisher{} }

func (*NodeHandle) Subscribe(topic string, queueSize int, cb func(any)) Subscriber {
	return Subscriber{}
}

func (*NodeHandle) AdvertiseService(name string, handler func(any, any) bool) ServiceServer {
	return ServiceServer{}
}

func (*NodeHandle) ServiceClient(name string) ServiceClient { return ServiceClient{} }

func (*NodeHandle) GetParam(name string) (string, bool) { return "", false }

func (*NodeHandle) GetParamCached(name string) (string, bool) { return "", false }

func (*NodeHandle) Param(name string, def any) any { return def }

func (*NodeHandle) HasParam(name string) bool { return false }

func (*NodeHandle) SetParam(name string, value any) {}

func (*NodeHandle) DeleteParam(name string) {}

type Publisher struct{}
type Subscriber struct{}
type ServiceServer struct{}

type ServiceClient struct{}

func (ServiceClient) Call(req, resp any) bool { return false }

func GetParam(name string) (string, bool) { return "", false }

func GetParamCached(name string) (string, bool) { return "", false }

func Param(name string, def any) any { return def }

func HasParam(name string) bool { return false }

func SetParam(name string, value any) {}

func DeleteParam(name string) {}

func ServiceCall(name string, req, resp any) bool { return false }
`

// Module writes a temporary module rooted at a fresh t.TempDir(), with
// a go.mod, a copy of the ros stub package under ros/, and files (keyed
// by path relative to the module root, e.g. "main.go") containing the
// given source. It returns the module's root directory, suitable as
// internal/load.Options.Dir.
func Module(t *testing.T, modulePath string, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	mustWrite(t, filepath.Join(dir, "go.mod"), "module "+modulePath+"\n\ngo 1.22\n")
	mustWrite(t, filepath.Join(dir, "ros", "ros.go"), RosStubSource)
	for name, content := range files {
		mustWrite(t, filepath.Join(dir, name), content)
	}
	return dir
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
