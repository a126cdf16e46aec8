package core

type RegisterMessage struct {
	UserName  string
	Password  string
	Password2 string
}

type CredentialsMessage struct {
	UserName string
	Password string
}
