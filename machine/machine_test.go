package machine_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cachetrace/machine"
)

func TestMachine(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Machine Suite")
}

var _ = Describe("RegisterFile", func() {
	It("starts with PC and all registers at zero", func() {
		f := machine.NewRegisterFile()
		Expect(f.PC).To(Equal(int32(0)))
		for r := uint8(0); r < machine.NumRegs; r++ {
			Expect(f.Read(r)).To(Equal(int32(0)))
		}
	})

	It("allows register 0 to be written and read like any other", func() {
		f := machine.NewRegisterFile()
		f.Write(0, 99)
		Expect(f.Read(0)).To(Equal(int32(99)))
	})
})

var _ = Describe("Memory", func() {
	It("starts zero-initialized", func() {
		m := machine.NewMemory()
		Expect(m.ReadWord(0)).To(Equal(int32(0)))
		Expect(m.ReadWord(machine.Capacity - 1)).To(Equal(int32(0)))
	})

	It("stores and retrieves words", func() {
		m := machine.NewMemory()
		m.WriteWord(42, 7)
		Expect(m.ReadWord(42)).To(Equal(int32(7)))
	})

	It("tracks the loaded word count separately from content", func() {
		m := machine.NewMemory()
		m.SetLoaded(3)
		Expect(m.Loaded()).To(Equal(3))
	})
})
