package ftplugin

// Hook is anything that runs filetype initialization on a buffer.
type Hook interface {
	Trigger(filetype string, buf Buffer) error
}

// Chain runs hooks in order. Later hooks see the options earlier
// hooks assigned, so they win ties.
type Chain []Hook

// Trigger implements Hook. The first failure stops the chain.
func (c Chain) Trigger(filetype string, buf Buffer) error {
	for _, h := range c {
		if err := h.Trigger(filetype, buf); err != nil {
			return err
		}
	}
	return nil
}
