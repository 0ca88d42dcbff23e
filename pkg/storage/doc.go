// Package storage writes animal images to the output directory.
//
// Files are named after the animal with the configured extension. A file
// that already exists counts as downloaded; there is no freshness or hash
// check. Writes go to a temporary file in the same directory that is then
// renamed into place, so a reader never sees a half-written image.
//
// Usage:
//
//	manager := storage.NewManager("tmp/images", ".jpg")
//	if !manager.Exists("Cheetah") {
//	    path, err := manager.Save(bytes.NewReader(data), "Cheetah")
//	    ...
//	}
package storage
