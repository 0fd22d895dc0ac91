package placement

import (
	"github.com/cockroachdb/errors"
	"github.com/hlsfab/floorplan/device"
	"github.com/launchdarkly/go-jsonstream/v3/jreader"
)

// Port is one memory interface of a kernel that needs a region
type Port struct {
	// Name identifies the interface instance; it becomes the cell pattern in placement constraints
	Name     string
	Category device.Category
	// Index is the platform port index, used by devices with fixed port maps
	Index int
	// Width is the data channel width in bits. Ports with a width of 0 have no streaming adapter.
	Width int
}

// ReadPorts parses a JSON array of port objects:
//
//	[{"name": "a_q", "category": "DDR", "index": 0, "width": 512}, ...]
//
// "index" and "width" default to 0. Unknown fields are ignored.
func ReadPorts(data []byte) ([]Port, error) {
	r := jreader.NewReader(data)

	var ports []Port

	for arr := r.Array(); arr.Next(); {
		var port Port
		var hasName, hasCategory bool

		for obj := r.Object(); obj.Next(); {
			switch string(obj.Name()) {
			case "name":
				port.Name = r.String()
				hasName = true
			case "category":
				category, err := device.ParseCategory(r.String())
				if err != nil {
					return nil, errors.Wrapf(err, "port %d", len(ports))
				}
				port.Category = category
				hasCategory = true
			case "index":
				port.Index = r.Int()
			case "width":
				port.Width = r.Int()
			default:
				_ = r.SkipValue()
			}
		}

		if r.Error() != nil {
			break
		}
		if !hasName || port.Name == "" {
			return nil, errors.Newf("port %d has no name", len(ports))
		}
		if !hasCategory {
			return nil, errors.Newf("port %q has no category", port.Name)
		}
		if port.Index < 0 {
			return nil, errors.Newf("port %q has negative index %d", port.Name, port.Index)
		}
		if port.Width < 0 {
			return nil, errors.Newf("port %q has negative width %d", port.Name, port.Width)
		}

		ports = append(ports, port)
	}

	if err := r.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to parse port list")
	}

	return ports, nil
}
