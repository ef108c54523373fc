package hw

// Address map of the widgets exposed by the FPGA shell. Registers are 32 bits
// wide. Stream addresses are only valid with PullDMA / PushDMA.
const (
	// Target-to-host mailbox used by the environment proxy.
	ToHost   uint64 = 0x0000
	FromHost uint64 = 0x0004

	// UART widget.
	UARTOutValid uint64 = 0x0100
	UARTOutBits  uint64 = 0x0104
	UARTOutReady uint64 = 0x0108
	UARTInValid  uint64 = 0x010c
	UARTInBits   uint64 = 0x0110
	UARTInReady  uint64 = 0x0114

	// Serial console bridge widget.
	SerialOutCount uint64 = 0x0200
	SerialOutData  uint64 = 0x0204

	// Block device widget.
	BlkNSectors   uint64 = 0x0300
	BlkMaxReqLen  uint64 = 0x0304
	BlkReqValid   uint64 = 0x0308
	BlkReqWrite   uint64 = 0x030c
	BlkReqSector  uint64 = 0x0310
	BlkReqLen     uint64 = 0x0314
	BlkReqTag     uint64 = 0x0318
	BlkReqReady   uint64 = 0x031c
	BlkRespTag    uint64 = 0x0320
	BlkRespValid  uint64 = 0x0324
	BlkWriteData  uint64 = 0x0340
	BlkReadData   uint64 = 0x0344
	BlkSectorSize        = 512

	// Host memory channel widget.
	MemReqValid  uint64 = 0x0400
	MemReqWrite  uint64 = 0x0404
	MemReqAddrLo uint64 = 0x0408
	MemReqAddrHi uint64 = 0x040c
	MemReqTag    uint64 = 0x0410
	MemReqReady  uint64 = 0x0414
	MemRespTag   uint64 = 0x0418
	MemRespValid uint64 = 0x041c
	MemWriteData uint64 = 0x0440
	MemReadData  uint64 = 0x0444
	MemDataBytes        = 8

	// Network interface widget.
	NICMacLo        uint64 = 0x0500
	NICMacHi        uint64 = 0x0504
	NICRlimitInc    uint64 = 0x0508
	NICRlimitPeriod uint64 = 0x050c
	NICRlimitSize   uint64 = 0x0510
	NICEgressReady  uint64 = 0x0514
	NICIngressSpace uint64 = 0x0518
	NICEgress       uint64 = 0x0540
	NICIngress      uint64 = 0x0544
)
