// seehuhn.de/go/genart - generative art from raster images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/mdns"

	"seehuhn.de/go/genart"
)

// ServiceType is the DNS-SD service type advertised by [Advertise].
const ServiceType = "_genart._tcp"

// Advertise announces the server on the local network via multicast DNS.
// The caller must shut down the returned server when done.
func Advertise(port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("server: hostname: %w", err)
	}

	service, err := mdns.NewMDNSService(host, ServiceType, "", "", port, nil,
		[]string{"path=/"})
	if err != nil {
		return nil, fmt.Errorf("server: mDNS service: %w", err)
	}
	srv, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("server: mDNS server: %w", err)
	}

	genart.Logger().Info("advertising via mDNS", "service", ServiceType, "instance", host, "port", port)
	return srv, nil
}
