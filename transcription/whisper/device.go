package whisper

import (
	"os"
	"sync"
)

// Device is the compute device inference runs on.
type Device string

const (
	DeviceCPU  Device = "cpu"
	DeviceCUDA Device = "cuda"
)

// nvidiaMarkers are present when an NVIDIA driver is loaded.
var nvidiaMarkers = []string{"/proc/driver/nvidia/version", "/dev/nvidia0"}

var (
	detectOnce   sync.Once
	detectResult Device
)

// DetectDevice reports cuda when an NVIDIA driver is visible and cpu
// otherwise. The host is checked once per process.
func DetectDevice() Device {
	detectOnce.Do(func() {
		detectResult = detectDevice(nvidiaMarkers)
	})
	return detectResult
}

func detectDevice(markers []string) Device {
	for _, p := range markers {
		if _, err := os.Stat(p); err == nil {
			return DeviceCUDA
		}
	}
	return DeviceCPU
}

// computeType picks the faster-whisper quantization for the device.
func (d Device) computeType() string {
	if d == DeviceCUDA {
		return "float16"
	}
	return "int8"
}
