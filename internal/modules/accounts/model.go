package accounts

// Credential is one username/password record.
//
// Passwords are stored and compared in plain text, matching the on-disk
// format. Comparison goes through credentialsMatch so a hash can be
// introduced later without touching call sites.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"-"`
}

// credentialsMatch is the single seam for credential comparison.
func credentialsMatch(stored Credential, username, password string) bool {
	return stored.Username == username && stored.Password == password
}
