package models

// ClientWithDevices is the client document with its owned devices attached.
type ClientWithDevices struct {
	Client
	Devices []Device `json:"devices"`
}

// DeviceWithJobs is the device document with its repair jobs attached.
type DeviceWithJobs struct {
	Device
	Jobs []Repair `json:"jobs"`
}

// ClientWithDevicesAndJobs is the client document with its devices and
// their repair jobs attached.
type ClientWithDevicesAndJobs struct {
	Client
	Devices []DeviceWithJobs `json:"devices"`
}
