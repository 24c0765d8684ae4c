package systemreporter

type Report struct {
	ZpoolStatus string `json:"zpool_status"`
	ZpoolIoStat string `json:"zpool_io_stat"`
	Dmesg       string `json:"dmesg"`

	TopProcessesByCPU string `json:"top_processes_by_cpu"`
	VmStat            string `json:"vm_stat"`
	IoStat            string `json:"io_stat"`
}
