package healthcheck_head

// StoreProbe последний результат фоновой проверки базы.
type StoreProbe interface {
	Up() bool
}
