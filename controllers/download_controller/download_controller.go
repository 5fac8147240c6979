package download_controller

import "github.com/neonstore-ecommerce/neonstore-admin/client"

var manager *client.DownloadManager

// Init wires the download manager used by every handler in this package.
func Init(m *client.DownloadManager) {
	manager = m
}
