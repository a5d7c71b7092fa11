package settings

import "slices"

// Keys of the settings directory. Each key is one file.
const (
	KeyAuth           = "auth-storage"
	KeyReaderSettings = "reader-settings"
	KeyTheme          = "theme-storage"
	// KeyLibrary holds the time of the last local library write. The library
	// itself lives in the database; this key lets other processes notice.
	KeyLibrary      = "library-storage"
	KeyLastSync     = "lastSync"
	KeyDBBackup     = "reader-db-backup"
	KeyDBBackupDate = "reader-db-backup-date"
	KeySyncTrigger  = "reader-sync-trigger"

	// CloudBackupPrefix prefixes the per-user periodic settings backup key.
	CloudBackupPrefix = "cloud-backup-"
)

// syncedKeys are the keys whose local writes schedule a push.
var syncedKeys = []string{KeyAuth, KeyReaderSettings, KeyTheme, KeyLibrary}

// watchedKeys are the keys whose foreign writes reinitialize this process.
var watchedKeys = []string{KeyAuth, KeyReaderSettings, KeySyncTrigger, KeyLibrary}

// IsSynced reports whether key is part of the sync payload.
func IsSynced(key string) bool {
	return slices.Contains(syncedKeys, key)
}

// IsWatched reports whether a foreign write to key is relevant.
func IsWatched(key string) bool {
	return slices.Contains(watchedKeys, key)
}

// CloudBackupKey returns the periodic backup key of a user.
func CloudBackupKey(userID string) string {
	return CloudBackupPrefix + userID
}
