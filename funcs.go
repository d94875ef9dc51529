// Copyright (c) 2020 Peter Hagelund
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package gpio

// altNames holds the signal on each alternate function, "-" when unassigned.
var altNames = [54][6]string{
	{"SDA0", "SA5", "PCLK", "AVEOUT_VCLK", "AVEIN_VCLK", "-"},
	{"SCL0", "SA4", "DE", "AVEOUT_DSYNC", "AVEIN_DSYNC", "-"},
	{"SDA1", "SA3", "LCD_VSYNC", "AVEOUT_VSYNC", "AVEIN_VSYNC", "-"},
	{"SCL1", "SA2", "LCD_HSYNC", "AVEOUT_HSYNC", "AVEIN_HSYNC", "-"},
	{"GPCLK0", "SA1", "DPI_D0", "AVEOUT_VID0", "AVEIN_VID0", "ARM_TDI"},
	{"GPCLK1", "SA0", "DPI_D1", "AVEOUT_VID1", "AVEIN_VID1", "ARM_TDO"},
	{"GPCLK2", "SOE_N_SE", "DPI_D2", "AVEOUT_VID2", "AVEIN_VID2", "ARM_RTCK"},
	{"SPI0_CE1_N", "SWE_N_SRW_N", "DPI_D3", "AVEOUT_VID3", "AVEIN_VID3", "-"},
	{"SPI0_CE0_N", "SD0", "DPI_D4", "AVEOUT_VID4", "AVEIN_VID4", "-"},
	{"SPI0_MISO", "SD1", "DPI_D5", "AVEOUT_VID5", "AVEIN_VID5", "-"},
	{"SPI0_MOSI", "SD2", "DPI_D6", "AVEOUT_VID6", "AVEIN_VID6", "-"},
	{"SPI0_SCLK", "SD3", "DPI_D7", "AVEOUT_VID7", "AVEIN_VID7", "-"},
	{"PWM0", "SD4", "DPI_D8", "AVEOUT_VID8", "AVEIN_VID8", "ARM_TMS"},
	{"PWM1", "SD5", "DPI_D9", "AVEOUT_VID9", "AVEIN_VID9", "ARM_TCK"},
	{"TXD0", "SD6", "DPI_D10", "AVEOUT_VID10", "AVEIN_VID10", "TXD1"},
	{"RXD0", "SD7", "DPI_D11", "AVEOUT_VID11", "AVEIN_VID11", "RXD1"},
	{"FL0", "SD8", "DPI_D12", "CTS0", "SPI1_CE2_N", "CTS1"},
	{"FL1", "SD9", "DPI_D13", "RTS0", "SPI1_CE1_N", "RTS1"},
	{"PCM_CLK", "SD10", "DPI_D14", "I2CSL_SDA_MOSI", "SPI1_CE0_N", "PWM0"},
	{"PCM_FS", "SD11", "DPI_D15", "I2CSL_SCL_SCLK", "SPI1_MISO", "PWM1"},
	{"PCM_DIN", "SD12", "DPI_D16", "I2CSL_MISO", "SPI1_MOSI", "GPCLK0"},
	{"PCM_DOUT", "SD13", "DPI_D17", "I2CSL_CE_N", "SPI1_SCLK", "GPCLK1"},
	{"SD0_CLK", "SD14", "DPI_D18", "SD1_CLK", "ARM_TRST", "-"},
	{"SD0_CMD", "SD15", "DPI_D19", "SD1_CMD", "ARM_RTCK", "-"},
	{"SD0_DAT0", "SD16", "DPI_D20", "SD1_DAT0", "ARM_TDO", "-"},
	{"SD0_DAT1", "SD17", "DPI_D21", "SD1_DAT1", "ARM_TCK", "-"},
	{"SD0_DAT2", "TE0", "DPI_D22", "SD1_DAT2", "ARM_TDI", "-"},
	{"SD0_DAT3", "TE1", "DPI_D23", "SD1_DAT3", "ARM_TMS", "-"},
	{"SDA0", "SA5", "PCM_CLK", "FL0", "-", "-"},
	{"SCL0", "SA4", "PCM_FS", "FL1", "-", "-"},
	{"TE0", "SA3", "PCM_DIN", "CTS0", "-", "CTS1"},
	{"FL0", "SA2", "PCM_DOUT", "RTS0", "-", "RTS1"},
	{"GPCLK0", "SA1", "RING_OCLK", "TXD0", "-", "TXD1"},
	{"FL1", "SA0", "TE1", "RXD0", "-", "RXD1"},
	{"GPCLK0", "SOE_N_SE", "TE2", "SD1_CLK", "-", "-"},
	{"SPI0_CE1_N", "SWE_N_SRW_N", "-", "SD1_CMD", "-", "-"},
	{"SPI0_CE0_N", "SD0", "TXD0", "SD1_DAT0", "-", "-"},
	{"SPI0_MISO", "SD1", "RXD0", "SD1_DAT1", "-", "-"},
	{"SPI0_MOSI", "SD2", "RTS0", "SD1_DAT2", "-", "-"},
	{"SPI0_SCLK", "SD3", "CTS0", "SD1_DAT3", "-", "-"},
	{"PWM0", "SD4", "-", "SD1_DAT4", "SPI2_MISO", "TXD1"},
	{"PWM1", "SD5", "TE0", "SD1_DAT5", "SPI2_MOSI", "RXD1"},
	{"GPCLK1", "SD6", "TE1", "SD1_DAT6", "SPI2_SCLK", "RTS1"},
	{"GPCLK2", "SD7", "TE2", "SD1_DAT7", "SPI2_CE0_N", "CTS1"},
	{"GPCLK1", "SDA0", "SDA1", "TE0", "SPI2_CE1_N", "-"},
	{"PWM1", "SCL0", "SCL1", "TE1", "SPI2_CE2_N", "-"},
	{"SDA0", "SDA1", "SPI0_CE0_N", "-", "-", "SPI2_CE1_N"},
	{"SCL0", "SCL1", "SPI0_MISO", "-", "-", "SPI2_CE0_N"},
	{"SD0_CLK", "FL0", "SPI0_MOSI", "SD1_CLK", "ARM_TRST", "SPI2_SCLK"},
	{"SD0_CMD", "GPCLK0", "SPI0_SCLK", "SD1_CMD", "ARM_RTCK", "SPI2_MOSI"},
	{"SD0_DAT0", "GPCLK1", "PCM_CLK", "SD1_DAT0", "ARM_TDO", "-"},
	{"SD0_DAT1", "GPCLK2", "PCM_FS", "SD1_DAT1", "ARM_TCK", "-"},
	{"SD0_DAT2", "PWM0", "PCM_DIN", "SD1_DAT2", "ARM_TDI", "-"},
	{"SD0_DAT3", "PWM1", "PCM_DOUT", "SD1_DAT3", "ARM_TMS", "-"},
}

// defaultPulls holds the pull state of each pin after reset.
var defaultPulls = [54]Pull{
	PullUp, PullUp, PullUp, PullUp, PullUp, PullUp, PullUp, PullUp, PullUp, // GPIO0-8
	PullDown, PullDown, PullDown, PullDown, PullDown, PullDown, PullDown, PullDown, PullDown, PullDown, PullDown, PullDown, PullDown, PullDown, PullDown, PullDown, PullDown, PullDown, PullDown, // GPIO9-27
	PullNone, PullNone, // GPIO28-29
	PullDown, PullDown, PullDown, PullDown, // GPIO30-33
	PullUp, PullUp, PullUp, // GPIO34-36
	PullDown, PullDown, PullDown, PullDown, PullDown, PullDown, PullDown, // GPIO37-43
	PullNone, PullNone, // GPIO44-45
	PullUp, PullUp, PullUp, PullUp, PullUp, PullUp, PullUp, PullUp, // GPIO46-53
}
