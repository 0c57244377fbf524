// Package libpng loads libpng 1.6 at runtime without cgo and exposes the
// addresses of its exported functions.
//
// A Loader resolves every function in its Manifest when a library is loaded.
// FlagVersionCheck and FlagFunctionCheck reject a library that is not a
// compatible libpng; a rejected library is closed again and the function
// table stays empty. Resolved functions can be called through Bind.
//
//	if err := libpng.Load(libpng.FlagsDefault).Err(); err != nil {
//		return err
//	}
//	defer libpng.Unload()
//
//	var accessVersion func() uint32
//	if err := libpng.Bind(&accessVersion, "png_access_version_number"); err != nil {
//		return err
//	}
package libpng
