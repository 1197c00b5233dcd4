package roles

type Device interface {
	On()
}

type Saver interface {
	Save()
}

type Lamp struct{}

func (Lamp) On() {}

type GoodSwitch struct {
	device Device
}

type BadSwitch struct {
	lamp *Lamp
}

type Record struct {
	Name string
}

type Active struct {
	Name string
}

func (a *Active) Save() {}

