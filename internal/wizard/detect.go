package wizard

import (
	"os"
	"os/exec"
)

// DetectionResult holds the transcoding hardware found on the system.
type DetectionResult struct {
	NvidiaGPU bool
	IntelGPU  bool
}

// Detector abstracts filesystem and path lookups for testing.
type Detector interface {
	LookPath(name string) (string, error)
	Stat(path string) (os.FileInfo, error)
}

// OSDetector uses the real OS for detection.
type OSDetector struct{}

func (OSDetector) LookPath(name string) (string, error)  { return exec.LookPath(name) }
func (OSDetector) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }

// Detect scans the machine for hardware-transcoding support: an NVIDIA
// GPU (device node or driver tooling) or an Intel iGPU render node.
func Detect(d Detector) DetectionResult {
	if d == nil {
		d = OSDetector{}
	}

	result := DetectionResult{}

	if _, err := d.Stat("/dev/nvidia0"); err == nil {
		result.NvidiaGPU = true
	} else if _, err := d.LookPath("nvidia-smi"); err == nil {
		result.NvidiaGPU = true
	}

	if _, err := d.Stat("/dev/dri/renderD128"); err == nil {
		result.IntelGPU = true
	}

	return result
}
