package cli

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	"github.com/sarchlab/simhost/config"
	"github.com/sarchlab/simhost/driver"
)

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.LinkLatency = 70
	cfg.StepSize = 256
	cfg.MaxCycles = 200000
	cfg.MemCapacity = 1 << 20
	cfg.LoadAddr = 0x1000

	return cfg
}

var _ = Describe("Flags", func() {
	It("should only override options given on the command line", func() {
		var flags config.Config
		cmd := &cobra.Command{}
		addOptionFlags(cmd, &flags)

		Expect(cmd.Flags().Set("netbw", "100")).To(Succeed())
		Expect(cmd.Flags().Set("macaddr", "02:00:00:00:00:01")).To(Succeed())
		Expect(cmd.Flags().Set("monitor", "true")).To(Succeed())

		cfg := config.Default()
		cfg.NetBurst = 32
		mergeFlags(cmd, &cfg, flags)

		Expect(cfg.NetBandwidth).To(Equal(uint64(100)))
		Expect(cfg.MACAddr).To(Equal("02:00:00:00:00:01"))
		Expect(cfg.Monitor).To(BeTrue())
		Expect(cfg.NetBurst).To(Equal(uint64(32)))
	})

	It("should register a flag for every option", func() {
		var flags config.Config
		cmd := &cobra.Command{}
		addOptionFlags(cmd, &flags)

		for name := range optionUsage {
			Expect(cmd.Flags().Lookup(name)).NotTo(BeNil(), name)
		}

		Expect(cmd.Flags().Lookup("linklatency").DefValue).To(Equal("6405"))
	})
})

var _ = Describe("System", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = &bytes.Buffer{}
	})

	It("should pass the demo program", func() {
		s, err := buildSystem(smallConfig(), out)
		Expect(err).NotTo(HaveOccurred())

		outcome := s.driver.Run()

		Expect(outcome.Status).To(Equal(driver.Passed))
		Expect(outcome.ExitStatus()).To(Equal(0))
		Expect(out.String()).To(ContainSubstring("simhost demo: 4096-byte image"))
		Expect(out.String()).To(ContainSubstring("image verified"))
		Expect(s.nic.Stats().Delivered).To(BeNumerically(">=", 2))
		Expect(s.driver.BytesLoaded()).To(Equal(uint64(4096)))
	})

	It("should load a program image file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "prog.bin")
		Expect(os.WriteFile(path, DemoImage(300), 0o644)).To(Succeed())

		cfg := smallConfig()
		cfg.Program = path

		s, err := buildSystem(cfg, out)
		Expect(err).NotTo(HaveOccurred())

		outcome := s.driver.Run()

		Expect(outcome.Status).To(Equal(driver.Passed))
		Expect(s.driver.BytesLoaded()).To(Equal(uint64(300)))
	})

	It("should fail to build with a missing program", func() {
		cfg := smallConfig()
		cfg.Program = filepath.Join(GinkgoT().TempDir(), "missing.bin")

		_, err := buildSystem(cfg, out)

		Expect(err).To(HaveOccurred())
	})

	It("should attach a block device", func() {
		path := filepath.Join(GinkgoT().TempDir(), "disk.img")
		Expect(os.WriteFile(path, make([]byte, 8*512), 0o644)).To(Succeed())

		cfg := smallConfig()
		cfg.BlockDevice = path

		s, err := buildSystem(cfg, out)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.endpoints.Find("BlockDevice")).NotTo(BeNil())

		outcome := s.driver.Run()

		Expect(outcome.Status).To(Equal(driver.Passed))
		Expect(out.String()).To(ContainSubstring("block device: 8 sectors"))
	})

	It("should reuse a link trace file across runs", func() {
		cfg := smallConfig()
		cfg.NICLog = filepath.Join(GinkgoT().TempDir(), "link.csv")

		for i := 0; i < 2; i++ {
			s, err := buildSystem(cfg, out)
			Expect(err).NotTo(HaveOccurred())

			outcome := s.driver.Run()
			Expect(outcome.Status).To(Equal(driver.Passed))
		}

		Expect(cfg.NICLog).To(BeAnExistingFile())
	})

	It("should report a timeout when the budget is too small", func() {
		cfg := smallConfig()
		cfg.MaxCycles = 60

		s, err := buildSystem(cfg, out)
		Expect(err).NotTo(HaveOccurred())

		outcome := s.driver.Run()

		Expect(outcome.Status).To(Equal(driver.FailedTimeout))
		Expect(outcome.ExitStatus()).To(Equal(driver.TimeoutExitStatus))
	})
})

var _ = Describe("Demo program", func() {
	It("should check at most sixteen words of the image", func() {
		Expect(newDemoProgram(DemoImage(64), 0, false, 70).wordsToCheck()).
			To(Equal(8))
		Expect(newDemoProgram(DemoImage(4096), 0, false, 70).wordsToCheck()).
			To(Equal(16))
	})

	It("should produce a fixed demo image", func() {
		Expect(DemoImage(4)).To(Equal([]byte{7, 38, 69, 100}))
	})
})
