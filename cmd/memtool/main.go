// Command memtool inspects firmware and memory images with the basemem
// primitives: zero checks, width-stepped scans, comparisons, pattern fills
// and signature searches.
package main

import (
	"k8s.io/klog/v2"

	"github.com/coregx/basemem/cmd/memtool/cmd"
)

func main() {
	defer klog.Flush()
	cmd.Execute()
}
