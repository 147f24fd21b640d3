package sources

// Registry key paths, relative to HKEY_CURRENT_USER.
const (
	// taskbandKey holds the classic taskbar pin blob. Its binary layout is
	// undocumented and shifts between builds; parsing is best effort.
	taskbandKey = `Software\Microsoft\Windows\CurrentVersion\Explorer\Taskband`

	taskbandFavorites = "Favorites"

	// cloudStoreCache is where the newer shell generation keeps per-surface
	// state blobs, including the taskbar pinned list.
	cloudStoreCache = `Software\Microsoft\Windows\CurrentVersion\CloudStore\Store\Cache\DefaultAccount`

	// pinnedListMarker identifies the pinned-list subkey among the cache keys.
	pinnedListMarker = "windows.data.taskbar.pinnedlist"
)

// RegistryReader abstracts the per-user registry hive so sources stay
// testable off Windows. All paths are relative to HKEY_CURRENT_USER.
type RegistryReader interface {
	// BinaryValue reads a REG_BINARY value.
	BinaryValue(key, name string) ([]byte, error)

	// SubKeys lists the immediate subkey names of a key.
	SubKeys(key string) ([]string, error)
}
