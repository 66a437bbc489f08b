package ringbuffer

// Lifecycle holds the hooks a Buffer runs when elements enter or leave its
// logical range. Every element is created through Init, Copy or Move and
// removed through Destroy; the buffer never duplicates live elements with a
// bulk copy.
//
// Nil hooks fall back to the plain Go semantics: Init leaves the zero value,
// Copy and Move assign, Destroy does nothing. Destroyed slots are zeroed
// afterwards in every case.
type Lifecycle[T any] struct {
	// Init default-constructs the value in p, which holds the zero value.
	Init func(p *T)
	// Copy constructs dst as a copy of src.
	Copy func(dst, src *T)
	// Move constructs dst from src. src is destroyed right after. Nil falls
	// back to Copy.
	Move func(dst, src *T)
	// Destroy releases whatever p holds.
	Destroy func(p *T)
}

func (l *Lifecycle[T]) initValue(p *T) {
	if l.Init != nil {
		l.Init(p)
	}
}

func (l *Lifecycle[T]) copyValue(dst, src *T) {
	if l.Copy != nil {
		l.Copy(dst, src)
		return
	}
	*dst = *src
}

func (l *Lifecycle[T]) moveValue(dst, src *T) {
	if l.Move != nil {
		l.Move(dst, src)
		return
	}
	l.copyValue(dst, src)
}

func (l *Lifecycle[T]) destroyValue(p *T) {
	if l.Destroy != nil {
		l.Destroy(p)
	}
	var zero T
	*p = zero
}
