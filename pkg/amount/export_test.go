package amount

// SetAfterRead installs fn to run between the read and the write of every add.
func (m *UnsynchronizedModifier) SetAfterRead(fn func()) {
	m.afterRead = fn
}

// SetAfterRead installs fn to run between the read and the write of every add.
func (m *SynchronizedModifier) SetAfterRead(fn func()) {
	m.afterRead = fn
}
