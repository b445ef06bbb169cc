package contracts

// DeviceInfo describes an input or output endpoint exposed by a driver.
type DeviceInfo struct {
	Name         string // Device name.
	Manufacturer string // Device manufacturer or backend label.
	EntityName   string // Name of the entity to which the device belongs.
}
